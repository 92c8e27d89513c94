package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/pkg/goerror"
	"github.com/shandysiswandi/godigest/internal/pkg/hash"
	"github.com/shandysiswandi/godigest/internal/pkg/instrument"
	"github.com/shandysiswandi/godigest/internal/pkg/salt"
	"github.com/shandysiswandi/godigest/internal/pkg/validator"
)

type fixedSalt struct{ value string }

func (f fixedSalt) Generate() string { return f.value }

func newTestUsecase(t *testing.T, sg SaltGenerator) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	if sg == nil {
		sg = salt.NewGenerator()
	}

	return New(Dependency{
		Hashers: map[entity.Algorithm]hash.Hash{
			entity.AlgorithmMD5:    hash.NewMD5(),
			entity.AlgorithmSHA1:   hash.NewSHA1(),
			entity.AlgorithmSHA256: hash.NewSHA256(),
			entity.AlgorithmSHA512: hash.NewSHA512(),
		},
		Salt:       sg,
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func TestUsecase_Compute_PlainBatch(t *testing.T) {
	uc := newTestUsecase(t, nil)

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:   []string{"Hello", "Hello"},
		Algorithm: "sha256",
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if out.Salted {
		t.Error("Compute() Salted = true, want false")
	}
	if out.Algorithm != "SHA256" {
		t.Errorf("Compute() Algorithm = %v, want SHA256", out.Algorithm)
	}
	if len(out.Items) != 0 {
		t.Errorf("Compute() Items length = %d, want 0", len(out.Items))
	}
	if len(out.Digests) != 2 {
		t.Fatalf("Compute() Digests length = %d, want 2", len(out.Digests))
	}

	want := "185F8DB32271FE25F561A6FC938B2E264306EC304EDA518007D1764826381969"
	if out.Digests[0] != want {
		t.Errorf("Compute() Digests[0] = %v, want %v", out.Digests[0], want)
	}
	if out.Digests[0] != out.Digests[1] {
		t.Error("Compute() same input produced different digests")
	}
}

func TestUsecase_Compute_FixedSalt(t *testing.T) {
	uc := newTestUsecase(t, nil)

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:   []string{"Hello"},
		Algorithm: "md5",
		Salt:      "X",
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !out.Salted {
		t.Error("Compute() Salted = false, want true")
	}
	if len(out.Digests) != 0 {
		t.Errorf("Compute() Digests length = %d, want 0", len(out.Digests))
	}
	if len(out.Items) != 1 {
		t.Fatalf("Compute() Items length = %d, want 1", len(out.Items))
	}

	item := out.Items[0]
	if item.Seq != 1 {
		t.Errorf("Compute() Items[0].Seq = %d, want 1", item.Seq)
	}
	if item.Salt != "X" {
		t.Errorf("Compute() Items[0].Salt = %v, want X", item.Salt)
	}
	if item.Algorithm != "MD5" {
		t.Errorf("Compute() Items[0].Algorithm = %v, want MD5", item.Algorithm)
	}

	// MD5("HelloX"), the salt is appended before hashing.
	want := "0F121698AE6354A1A8C7B86A0F1BD852"
	if item.Digest != want {
		t.Errorf("Compute() Items[0].Digest = %v, want %v", item.Digest, want)
	}
}

func TestUsecase_Compute_RandomSalt(t *testing.T) {
	uc := newTestUsecase(t, nil)

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:    []string{"a", "b", "c"},
		Algorithm:  "SHA512",
		RandomSalt: true,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !out.Salted {
		t.Error("Compute() Salted = false, want true")
	}
	if len(out.Items) != 3 {
		t.Fatalf("Compute() Items length = %d, want 3", len(out.Items))
	}

	inputs := []string{"a", "b", "c"}
	sha512 := hash.NewSHA512()
	for i, item := range out.Items {
		if item.Seq != i+1 {
			t.Errorf("Compute() Items[%d].Seq = %d, want %d", i, item.Seq, i+1)
		}
		if len(item.Salt) != salt.Length {
			t.Errorf("Compute() Items[%d].Salt length = %d, want %d", i, len(item.Salt), salt.Length)
		}

		redone, err := sha512.Hash(inputs[i] + item.Salt)
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if item.Digest != string(redone) {
			t.Errorf("Compute() Items[%d].Digest does not match recomputed digest", i)
		}
	}
}

func TestUsecase_Compute_RandomSaltIsFreshPerItem(t *testing.T) {
	uc := newTestUsecase(t, nil)

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:    []string{"same", "same"},
		Algorithm:  "sha1",
		RandomSalt: true,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if out.Items[0].Salt == out.Items[1].Salt {
		t.Error("Compute() random salts are equal across items")
	}
	if out.Items[0].Digest == out.Items[1].Digest {
		t.Error("Compute() digests are equal despite fresh salts")
	}
}

func TestUsecase_Compute_EmptyBatch(t *testing.T) {
	uc := newTestUsecase(t, fixedSalt{value: "zz"})

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:    []string{},
		Algorithm:  "sha256",
		RandomSalt: true,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !out.Salted {
		t.Error("Compute() Salted = false, want true")
	}
	if len(out.Items) != 0 || len(out.Digests) != 0 {
		t.Errorf("Compute() output not empty: items=%d digests=%d", len(out.Items), len(out.Digests))
	}
}

func TestUsecase_Compute_Errors(t *testing.T) {
	uc := newTestUsecase(t, nil)

	tests := []struct {
		name string
		in   ComputeInput
	}{
		{
			name: "MissingAlgorithm",
			in:   ComputeInput{Strings: []string{"x"}},
		},
		{
			name: "UnsupportedAlgorithm",
			in:   ComputeInput{Strings: []string{"x"}, Algorithm: "sha3"},
		},
		{
			name: "SaltConflictsWithRandomSalt",
			in:   ComputeInput{Strings: []string{"x"}, Algorithm: "md5", Salt: "s", RandomSalt: true},
		},
		{
			name: "NilStrings",
			in:   ComputeInput{Algorithm: "md5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Compute(context.Background(), tt.in)
			if err == nil {
				t.Fatal("Compute() error = nil, want error")
			}
			if out != nil {
				t.Error("Compute() output is not nil on error")
			}

			var gerr *goerror.Error
			if !errors.As(err, &gerr) {
				t.Fatalf("Compute() error type = %T, want *goerror.Error", err)
			}
			if gerr.StatusCode() < 400 || gerr.StatusCode() >= 500 {
				t.Errorf("Compute() status = %d, want 4xx", gerr.StatusCode())
			}
		})
	}
}

func TestUsecase_Compute_UppercaseHexOutput(t *testing.T) {
	uc := newTestUsecase(t, nil)

	out, err := uc.Compute(context.Background(), ComputeInput{
		Strings:   []string{"The quick brown fox jumps over the lazy dog"},
		Algorithm: "sha1",
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	digest := out.Digests[0]
	if len(digest) != 40 {
		t.Errorf("Compute() digest length = %d, want 40", len(digest))
	}
	if digest != strings.ToUpper(digest) {
		t.Errorf("Compute() digest is not uppercase: %v", digest)
	}
}
