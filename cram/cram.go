// Package cram builds CRAM-MD5 challenge responses (RFC 2195).
//
// A server offering CRAM-MD5 sends a base64-encoded challenge; the client
// answers with base64("username SP hex(HMAC-MD5(secret, challenge))").
// Only the client side is implemented here.
package cram

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/base64"
	"fmt"

	"github.com/emacsattic/string-fns/hexutil"
)

// Response computes the client response for a base64-encoded challenge.
// Returns an error only when the challenge is not valid base64.
func Response(username, secret, challenge string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(challenge)
	if err != nil {
		return "", fmt.Errorf("decode challenge: %w", err)
	}

	mac := hmac.New(md5.New, []byte(secret))
	mac.Write(raw)
	digest := hexutil.Encode(string(mac.Sum(nil)))

	return base64.StdEncoding.EncodeToString([]byte(username + " " + digest)), nil
}
