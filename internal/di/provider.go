package di

import (
	"fmt"

	"github.com/LeJamon/gorfc9421/internal/config"
	"github.com/LeJamon/gorfc9421/internal/crypto"
	"github.com/LeJamon/gorfc9421/internal/rfc9421"
)

// Provider configures and registers services in the container.
type Provider struct {
	container *Container
	config    *config.Config

	signerKeyPair     *crypto.KeyPair
	verifierPublicKey crypto.PublicKey
}

// NewProvider creates a new service provider.
func NewProvider(container *Container, cfg *config.Config) *Provider {
	return &Provider{
		container: container,
		config:    cfg,
	}
}

// SetSignerKeyPair supplies the key material the signer builder needs.
// Must be called before resolving ServiceSigner.
func (p *Provider) SetSignerKeyPair(kp *crypto.KeyPair) {
	p.signerKeyPair = kp
}

// SetVerifierPublicKey supplies the key material the verifier builder
// needs. Must be called before resolving ServiceVerifier.
func (p *Provider) SetVerifierPublicKey(pub crypto.PublicKey) {
	p.verifierPublicKey = pub
}

// RegisterAll registers config, signer, verifier, replay guard, and batch
// verifier builders.
func (p *Provider) RegisterAll() error {
	p.container.Register(ServiceConfig, p.config)

	p.registerReplayGuardBuilder()
	p.registerSignerBuilder()
	p.registerVerifierBuilder()
	p.registerBatchVerifierBuilder()

	return nil
}

func (p *Provider) registerReplayGuardBuilder() {
	p.container.RegisterBuilder(ServiceReplayGuard, func(c *Container) (interface{}, error) {
		return rfc9421.NewReplayGuard(p.config.Verifier.ReplayCacheSize)
	})
}

// signerKeyPair is set by SetSignerKeyPair before RegisterAll builders run,
// since a signer needs private key material the config alone cannot supply.
func (p *Provider) registerSignerBuilder() {
	p.container.RegisterBuilder(ServiceSigner, func(c *Container) (interface{}, error) {
		if p.signerKeyPair == nil {
			return nil, fmt.Errorf("di: signer key pair not set, call SetSignerKeyPair first")
		}
		components, err := componentsFromNames(p.config.Signer.Components)
		if err != nil {
			return nil, err
		}
		return rfc9421.NewSigner(p.signerKeyPair, components), nil
	})
}

func (p *Provider) registerVerifierBuilder() {
	p.container.RegisterBuilder(ServiceVerifier, func(c *Container) (interface{}, error) {
		if p.verifierPublicKey.Algorithm() == crypto.AlgorithmUnknown {
			return nil, fmt.Errorf("di: verifier public key not set, call SetVerifierPublicKey first")
		}
		v := rfc9421.NewVerifier(p.verifierPublicKey)
		if rg, err := c.Get(ServiceReplayGuard); err == nil {
			v = v.WithReplayGuard(rg.(*rfc9421.ReplayGuard))
		}
		return v, nil
	})
}

func (p *Provider) registerBatchVerifierBuilder() {
	p.container.RegisterBuilder(ServiceBatchVerifier, func(c *Container) (interface{}, error) {
		return c.Get(ServiceVerifier)
	})
}

// componentsFromNames maps configured wire identifiers to signature
// components, rejecting anything componentFromIdentifier would reject.
func componentsFromNames(names []string) ([]rfc9421.SignatureComponent, error) {
	components := make([]rfc9421.SignatureComponent, 0, len(names))
	for _, name := range names {
		c, err := rfc9421.ComponentFromIdentifier(name)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

// GetConfig returns the configuration from the container.
func (p *Provider) GetConfig() *config.Config {
	return p.config
}
