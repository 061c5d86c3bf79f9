// Package webvh adapts the core's Original/EventLog and Signer to the
// did:webvh host contract: publish, update and deactivate a webvh DID
// document/log, and parse/serialize the webvh JSONL log wire format.
package webvh

import (
	"github.com/sirupsen/logrus"

	"github.com/onionoriginals/sdk-sub004/keys"
	"github.com/onionoriginals/sdk-sub004/oerrors"
	"github.com/onionoriginals/sdk-sub004/originals"
)

// Meta is the metadata a Host returns alongside a DID document/log.
type Meta struct {
	SCID        string   `json:"scid"`
	VersionID   string   `json:"versionId"`
	Created     string   `json:"created"`
	Updated     string   `json:"updated"`
	Deactivated bool     `json:"deactivated"`
	UpdateKeys  []string `json:"updateKeys"`
}

// HostResult is the shared return shape of every Host operation.
type HostResult struct {
	DID  string
	Doc  map[string]any
	Log  []LogEntry
	Meta Meta
}

// Host is the external webvh host collaborator. Its shape follows a
// narrow provider-callback pattern: the adapter never talks to a server
// directly, only through this interface.
type Host interface {
	CreateDID(domain string, signer HostSigner, updateKeys []string, verificationMethods []map[string]any, context []string) (*HostResult, error)
	UpdateDID(log []LogEntry, signer HostSigner, updateKeys []string, services []map[string]any) (*HostResult, error)
	DeactivateDID(log []LogEntry, signer HostSigner) (*HostResult, error)
	ResolveDID(did string) (*HostResult, error)
}

// HostSigner is the signer shape the webvh host contract expects: sign a
// {document, proof} pair and return {proofValue}. This is not the same
// shape as keys.Signer, which is why signerAdapter exists.
type HostSigner interface {
	Sign(input HostSignInput) (proofValue string, err error)
	GetVerificationMethodID() string
}

// HostSignInput is what a webvh host passes to HostSigner.Sign.
type HostSignInput struct {
	Document map[string]any `json:"document"`
	Proof    map[string]any `json:"proof"`
}

// signerAdapter converts a core keys.Signer into the HostSigner shape the
// host expects: it calls the core Signer.Sign and reads proof.Value back
// out as the host's proofValue.
type signerAdapter struct {
	inner keys.Signer
}

// AdaptSigner wraps a core Signer as a webvh HostSigner.
func AdaptSigner(signer keys.Signer) HostSigner {
	return &signerAdapter{inner: signer}
}

func (a *signerAdapter) GetVerificationMethodID() string {
	return a.inner.GetVerificationMethod()
}

func (a *signerAdapter) Sign(input HostSignInput) (string, error) {
	proof, err := a.inner.Sign(input)
	if err != nil {
		return "", err
	}
	return proof.Value, nil
}

// Publish builds a DID document for original and calls host.CreateDID with
// domain, an adapted signer, the supplied update keys, the document's
// verificationMethod entries and the DID v1 context. The document itself is
// not passed to host (CreateDID takes no document), and since the built
// document has no verificationMethod entry, that argument is nil. path is
// not used.
func Publish(host Host, original originals.Original, domain string, signer keys.Signer, updateKeys []string, path []string) (*HostResult, error) {
	doc := buildDIDDocument(original)
	var verificationMethods []map[string]any
	if vm, ok := doc["verificationMethod"].([]map[string]any); ok {
		verificationMethods = vm
	}
	result, err := host.CreateDID(domain, AdaptSigner(signer), updateKeys, verificationMethods, []string{"https://www.w3.org/ns/did/v1"})
	if err != nil {
		logrus.WithError(err).WithField("domain", domain).Error("webvh host: create DID failed")
		return nil, oerrors.NewExternalError(err, "webvh host: create DID failed")
	}
	return result, nil
}

// Update re-submits log to host with an adapted signer.
func Update(host Host, log []LogEntry, signer keys.Signer, updateKeys []string, services []map[string]any) (*HostResult, error) {
	result, err := host.UpdateDID(log, AdaptSigner(signer), updateKeys, services)
	if err != nil {
		logrus.WithError(err).Error("webvh host: update DID failed")
		return nil, oerrors.NewExternalError(err, "webvh host: update DID failed")
	}
	return result, nil
}

// Deactivate submits a deactivation of log to host with an adapted signer.
func Deactivate(host Host, log []LogEntry, signer keys.Signer) (*HostResult, error) {
	result, err := host.DeactivateDID(log, AdaptSigner(signer))
	if err != nil {
		logrus.WithError(err).Error("webvh host: deactivate DID failed")
		return nil, oerrors.NewExternalError(err, "webvh host: deactivate DID failed")
	}
	return result, nil
}

// Resolve fetches a webvh DID document and metadata from host.
func Resolve(host Host, did string) (*HostResult, error) {
	result, err := host.ResolveDID(did)
	if err != nil {
		logrus.WithError(err).WithField("did", did).Error("webvh host: resolve DID failed")
		return nil, oerrors.NewExternalError(err, "webvh host: resolve DID failed")
	}
	return result, nil
}

func buildDIDDocument(o originals.Original) map[string]any {
	return map[string]any{
		"id":        o.DID,
		"@context":  []string{"https://www.w3.org/ns/did/v1"},
		"resources": o.Resources,
	}
}
