package config

import "fmt"

var validAlgorithms = map[string]bool{
	"ed25519":                true,
	"ecdsa-secp256k1-sha256": true,
}

// ValidateConfig rejects unknown algorithm strings, non-positive
// durations, and empty component lists.
func ValidateConfig(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := validateSigner(&cfg.Signer); err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	if err := validateVerifier(&cfg.Verifier); err != nil {
		return fmt.Errorf("verifier: %w", err)
	}
	return nil
}

func validateServer(s *ServerConfig) error {
	if s.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if s.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive")
	}
	if s.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be positive")
	}
	return nil
}

func validateSigner(s *SignerConfig) error {
	if !validAlgorithms[s.Algorithm] {
		return fmt.Errorf("unknown algorithm %q", s.Algorithm)
	}
	if len(s.Components) == 0 {
		return fmt.Errorf("components must not be empty")
	}
	if s.ExpiresIn <= 0 {
		return fmt.Errorf("expires_in must be positive")
	}
	return nil
}

func validateVerifier(v *VerifierConfig) error {
	if v.MaxSkew <= 0 {
		return fmt.Errorf("max_skew must be positive")
	}
	if v.ReplayCacheSize <= 0 {
		return fmt.Errorf("replay_cache_size must be positive")
	}
	return nil
}
