package stream

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"time"

	pkgerr "github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

// Config of a kafka label source
type Config struct {
	Brokers   []string      `json:"brokers" mapstructure:"brokers"`
	Topic     string        `json:"topic" mapstructure:"topic"`
	GroupID   string        `json:"group-id" mapstructure:"group-id"`
	Timeout   time.Duration `json:"timeout" mapstructure:"timeout"`
	DualStack bool          `json:"dual-stack" mapstructure:"dual-stack"`
	TLSConfig *tls.Config   `json:"-" mapstructure:"-"`
}

// NewReader creates a kafka reader client for the config
func NewReader(config *Config) *kafkago.Reader {

	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: config.Brokers,
		GroupID: config.GroupID,
		Topic:   config.Topic,
		Dialer:  newDialer(config),
	})
}

func newDialer(config *Config) *kafkago.Dialer {
	return &kafkago.Dialer{
		DualStack: config.DualStack,
		Timeout:   config.Timeout,
		TLS:       config.TLSConfig,
	}
}

// NewTLSConfig creates a tls config for the kafka dialer from pem files
func NewTLSConfig(certFile, keyFile, caFile, serverName string) (*tls.Config, error) {

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, pkgerr.Wrap(err, "load x509 key pair failed")
	}

	ca, err := os.ReadFile(caFile)
	if err != nil {
		return nil, pkgerr.Wrap(err, "load ca-cert failed")
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(ca) {
		return nil, pkgerr.New("invalid ca-cert")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caCertPool,
		ServerName:   serverName,
	}, nil
}
