package service

import "context"

// VerificationResult is the outcome of a dealer license check against a
// provincial registry (OMVIC/AMVIC/VSA).
type VerificationResult struct {
	Status string `json:"status"` // "verified" | "unverified" | "rejected"
	Reason string `json:"reason"`
}

// LicenseVerifier checks a dealer license number with the issuing
// province's registry.
type LicenseVerifier interface {
	VerifyDealerLicense(ctx context.Context, province, licenseNumber string) (VerificationResult, error)
}

// StubLicenseVerifier reports every license as unverified until per-province
// registry clients are implemented.
type StubLicenseVerifier struct{}

func NewStubLicenseVerifier() *StubLicenseVerifier { return &StubLicenseVerifier{} }

func (*StubLicenseVerifier) VerifyDealerLicense(_ context.Context, _ string, _ string) (VerificationResult, error) {
	return VerificationResult{Status: "unverified", Reason: "not_implemented"}, nil
}
