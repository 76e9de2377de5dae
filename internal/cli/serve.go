package cli

import (
	"encoding/hex"
	"fmt"
	"log"
	"net/http"

	"github.com/LeJamon/gorfc9421/internal/config"
	"github.com/LeJamon/gorfc9421/internal/crypto"
	"github.com/LeJamon/gorfc9421/internal/di"
	"github.com/LeJamon/gorfc9421/internal/rfc9421"
	"github.com/LeJamon/gorfc9421/internal/server"
	"github.com/spf13/cobra"
)

var serveKeyHex string

// serveCmd starts the HTTP demo server (C13).
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the RFC 9421 HTTP demo server",
	Long: `Start a small HTTP server exposing /echo (signature-verifying,
response-signing), /pubkey (bootstrap), and /health.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveKeyHex, "key", "", "hex-encoded 32-byte private scalar/seed (random if omitted)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	alg := crypto.AlgorithmFromWire(cfg.Signer.Algorithm)
	if alg == crypto.AlgorithmUnknown {
		log.Fatalf("unknown signer algorithm %q", cfg.Signer.Algorithm)
	}

	keyPair, err := loadOrGenerateKeyPair(alg, serveKeyHex)
	if err != nil {
		log.Fatalf("failed to prepare server key pair: %v", err)
	}
	defer keyPair.Close()

	container := di.New()
	provider := di.NewProvider(container, cfg)
	provider.SetSignerKeyPair(keyPair)
	provider.SetVerifierPublicKey(keyPair.Public())
	if err := provider.RegisterAll(); err != nil {
		log.Fatalf("failed to register services: %v", err)
	}

	verifierSvc, err := container.Get(di.ServiceVerifier)
	if err != nil {
		log.Fatalf("failed to resolve verifier: %v", err)
	}

	srv := server.New(keyPair, verifierSvc.(*rfc9421.Verifier))

	if !quiet {
		fmt.Printf("Server key id: %s (%s)\n", keyPair.KeyID(), keyPair.Algorithm())
		fmt.Printf("Listening on %s\n", cfg.Server.ListenAddr)
		fmt.Println("  POST /echo    - signature-verifying echo, signs its response")
		fmt.Println("  GET  /pubkey  - bootstrap the server's public key")
		fmt.Println("  GET  /health  - liveness probe")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func loadOrGenerateKeyPair(alg crypto.Algorithm, keyHex string) (*crypto.KeyPair, error) {
	if keyHex == "" {
		return crypto.RandomKeyPair(alg)
	}
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid --key hex: %w", err)
	}
	return crypto.FromPrivateKeyBytes(alg, raw)
}
