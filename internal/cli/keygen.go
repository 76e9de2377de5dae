package cli

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/LeJamon/gorfc9421/internal/crypto"
	"github.com/spf13/cobra"
)

var keygenAlg string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a signing key pair",
	Long:  `Generate a random key pair for the given algorithm and print its key id, public key, and private key as hex.`,
	Run:   runKeygen,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().StringVar(&keygenAlg, "alg", "ed25519", "signing algorithm: ed25519 or ecdsa-secp256k1-sha256")
}

func runKeygen(cmd *cobra.Command, args []string) {
	alg := crypto.AlgorithmFromWire(keygenAlg)
	if alg == crypto.AlgorithmUnknown {
		log.Fatalf("unknown algorithm %q", keygenAlg)
	}

	kp, err := crypto.RandomKeyPair(alg)
	if err != nil {
		log.Fatalf("failed to generate key pair: %v", err)
	}
	defer kp.Close()

	fmt.Printf("algorithm:   %s\n", kp.Algorithm())
	fmt.Printf("keyid:       %s\n", kp.KeyID())
	fmt.Printf("public key:  %s\n", hex.EncodeToString(kp.Public().Bytes()))
	fmt.Printf("private key: %s\n", hex.EncodeToString(kp.Private().Bytes()))
}
