package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/godigest/internal/digest/entity"
	"github.com/shandysiswandi/godigest/internal/pkg/goerror"
)

type ComputeInput struct {
	Strings    []string
	Algorithm  string `validate:"required,algorithm"`
	Salt       string `validate:"excluded_with=RandomSalt"`
	RandomSalt bool
}

type HashItem struct {
	Seq       int
	Digest    string
	Salt      string
	Algorithm string
}

type ComputeOutput struct {
	// Salted reports whether salting was requested, which decides the
	// response shape for the whole batch.
	Salted    bool
	Algorithm string
	Digests   []string
	Items     []HashItem
}

// Compute hashes every input string with the requested algorithm.
//
// When a fixed salt is given it is appended to every string before
// hashing; when RandomSalt is set a fresh salt is drawn per string.
// All validation happens before any hashing so a bad request never
// produces partial output.
func (s *Usecase) Compute(ctx context.Context, in ComputeInput) (*ComputeOutput, error) {
	ctx, span := s.startSpan(ctx, "Compute")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Strings == nil {
		return nil, goerror.NewInvalidInput(nil, "strings", "strings is required")
	}

	algo := entity.AlgorithmFromString(in.Algorithm)
	hasher, ok := s.hashers[algo]
	if !ok {
		slog.WarnContext(ctx, "no hasher registered for algorithm", "algorithm", in.Algorithm)
		return nil, goerror.NewInvalidInput(nil, "algorithm",
			"algorithm must be one of MD5, SHA1, SHA256, SHA512")
	}

	out := &ComputeOutput{
		Salted:    in.Salt != "" || in.RandomSalt,
		Algorithm: algo.String(),
	}

	for i, str := range in.Strings {
		salt := in.Salt
		if in.RandomSalt {
			salt = s.salt.Generate()
		}

		digest, err := hasher.Hash(str + salt)
		if err != nil {
			slog.ErrorContext(ctx, "failed to compute digest", "algorithm", algo.String(), "error", err)
			return nil, goerror.NewServer(err)
		}

		if out.Salted {
			out.Items = append(out.Items, HashItem{
				Seq:       i + 1,
				Digest:    string(digest),
				Salt:      salt,
				Algorithm: algo.String(),
			})
			continue
		}
		out.Digests = append(out.Digests, string(digest))
	}

	return out, nil
}
