package model

import "time"

// UploadPolicy is a pre-signed permission to post one file directly to the
// object storage host, bypassing the backend. The signed fields are the
// credential; no bearer token is attached to the storage request.
type UploadPolicy struct {
	Key              string `json:"key"`
	Host             string `json:"host"`
	PolicyDocument   string `json:"policy"`
	SecurityToken    string `json:"securityToken"`
	Signature        string `json:"signature"`
	Credential       string `json:"xOssCredential"`
	Date             string `json:"xOssDate"`
	SignatureVersion string `json:"xOssSignatureVersion"`
	// Expire is a unix timestamp. Some backend deployments never populate it,
	// in which case the policy is treated as non-expiring.
	Expire int64 `json:"expire,omitempty"`
}

// Expired reports whether the policy can no longer be used at time now.
func (p UploadPolicy) Expired(now time.Time) bool {
	return p.Expire > 0 && p.Expire <= now.Unix()
}

// ObjectURL is the final location of the uploaded object.
func (p UploadPolicy) ObjectURL() string {
	return p.Host + "/" + p.Key
}
