package certificates

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"time"
)

const keyBits = 4096

// Subject names the organization written into generated certificates.
type Subject struct {
	Organization string
	Unit         string
	Hosts        []string
}

// GenerateSelfSignedCertificate creates a self-signed CA certificate valid until expire.
func GenerateSelfSignedCertificate(subject Subject, expire time.Time) (*x509.Certificate, *rsa.PrivateKey, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		return nil, nil, fmt.Errorf("generating serial number: %w", err)
	}

	name := pkix.Name{
		Organization:       []string{subject.Organization},
		OrganizationalUnit: []string{subject.Unit},
	}
	template := &x509.Certificate{
		SerialNumber:          serial,
		Issuer:                name,
		Subject:               name,
		DNSNames:              subject.Hosts,
		NotBefore:             time.Now(),
		NotAfter:              expire,
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}

	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generating rsa private key: %w", err)
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
	if err != nil {
		return nil, nil, err
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, nil, err
	}

	return cert, key, nil
}

// SelfSignedTLSConfig returns a server TLS configuration backed by a fresh self-signed certificate.
func SelfSignedTLSConfig(subject Subject, validity time.Duration) (*tls.Config, error) {
	cert, key, err := GenerateSelfSignedCertificate(subject, time.Now().Add(validity))
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}},
		MinVersion: tls.VersionTLS12,
	}, nil
}
