/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package tls

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"path"
)

// GetCertPool returns a pool holding the given PEM CA certificates, optionally on top of the system pool.
func GetCertPool(useSystemCertPool bool, tlsCACerts []string) (*x509.CertPool, error) {
	certPool := x509.NewCertPool()

	if useSystemCertPool {
		systemPool, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("failed to load system cert pool: %w", err)
		}

		certPool = systemPool
	}

	for _, v := range tlsCACerts {
		bytes, errRead := os.ReadFile(path.Clean(v))
		if errRead != nil {
			return nil, fmt.Errorf("failed to read cert: %w", errRead)
		}

		block, _ := pem.Decode(bytes)
		if block == nil {
			return nil, fmt.Errorf("failed to decode pem")
		}

		cert, errParse := x509.ParseCertificate(block.Bytes)
		if errParse != nil {
			return nil, fmt.Errorf("failed to parse cert: %w", errParse)
		}

		certPool.AddCert(cert)
	}

	return certPool, nil
}

// ClientConfig returns a client TLS config trusting rootCAs.
func ClientConfig(rootCAs *x509.CertPool) *tls.Config {
	return &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}
}

// HTTPClient returns an HTTP client whose transport uses tlsConfig.
func HTTPClient(tlsConfig *tls.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.TLSClientConfig = tlsConfig

	return &http.Client{Transport: transport}
}
