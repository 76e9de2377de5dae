package cli

import (
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/LeJamon/gorfc9421/internal/crypto"
	"github.com/LeJamon/gorfc9421/internal/rfc9421"
	"github.com/spf13/cobra"
)

var (
	verifyPubkeyHex string
	verifyAlg       string
	verifyMethod    string
	verifyURL       string
	verifyHeaders   []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signed HTTP request built from flags",
	Run:   runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyPubkeyHex, "pubkey", "", "hex-encoded public key (required)")
	verifyCmd.Flags().StringVar(&verifyAlg, "alg", "ed25519", "signing algorithm: ed25519 or ecdsa-secp256k1-sha256")
	verifyCmd.Flags().StringVar(&verifyMethod, "method", http.MethodGet, "HTTP method")
	verifyCmd.Flags().StringVar(&verifyURL, "url", "", "target URL (required)")
	verifyCmd.Flags().StringArrayVar(&verifyHeaders, "header", nil, "header in k=v form, repeatable; must include Signature and Signature-Input")
	_ = verifyCmd.MarkFlagRequired("pubkey")
	_ = verifyCmd.MarkFlagRequired("url")
}

func runVerify(cmd *cobra.Command, args []string) {
	alg := crypto.AlgorithmFromWire(verifyAlg)
	if alg == crypto.AlgorithmUnknown {
		log.Fatalf("unknown algorithm %q", verifyAlg)
	}

	raw, err := hex.DecodeString(verifyPubkeyHex)
	if err != nil {
		log.Fatalf("invalid --pubkey hex: %v", err)
	}
	pub, err := crypto.NewPublicKey(alg, raw)
	if err != nil {
		log.Fatalf("failed to load public key: %v", err)
	}

	req, err := http.NewRequest(verifyMethod, verifyURL, nil)
	if err != nil {
		log.Fatalf("invalid request: %v", err)
	}
	for _, h := range verifyHeaders {
		name, value, ok := strings.Cut(h, "=")
		if !ok {
			log.Fatalf("invalid --header %q, want k=v", h)
		}
		req.Header.Set(name, value)
	}

	verifier := rfc9421.NewVerifier(pub)
	msg := rfc9421.NewRequestMessage(req)
	if err := verifier.Verify(msg, rfc9421.VerifyOptions{}); err != nil {
		fmt.Printf("INVALID: %v\n", err)
		return
	}
	fmt.Println("VALID")
}
