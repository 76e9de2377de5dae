package config

import "github.com/spf13/viper"

// setDefaults establishes baseline values before the config file and
// environment variables are layered on top.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8421")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "5s")

	v.SetDefault("signer.algorithm", "ed25519")
	v.SetDefault("signer.components", []string{"@method", "@path", "@authority"})
	v.SetDefault("signer.expires_in", 300)

	v.SetDefault("verifier.max_skew", 300)
	v.SetDefault("verifier.replay_cache_size", 4096)
}
