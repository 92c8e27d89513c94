package usecase

import "context"

type SaltGenerateOutput struct {
	Salt string
}

// SaltGenerate draws a fresh random salt without hashing anything.
func (s *Usecase) SaltGenerate(ctx context.Context) (*SaltGenerateOutput, error) {
	_, span := s.startSpan(ctx, "SaltGenerate")
	defer span.End()

	return &SaltGenerateOutput{Salt: s.salt.Generate()}, nil
}
