package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/godigest/internal/digest/usecase"
	"github.com/shandysiswandi/godigest/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for digest computation.
type HTTPEndpoint struct {
	uc uc
}

// Compute hashes a batch of strings with the requested algorithm.
// @Summary Compute digests
// @Description Computes MD5/SHA1/SHA256/SHA512 digests for a batch of strings, optionally salted with a fixed or per-item random salt.
// @Tags Digest
// @Accept json
// @Produce json
// @Param request body ComputeRequest true "Compute payload"
// @Success 200 {object} router.successResponse{data=SaltedComputeResponse} "Digest results"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/digest/compute [post]
func (h *HTTPEndpoint) Compute(r *router.Request) (any, error) {
	var req ComputeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Compute(r.Context(), usecase.ComputeInput{
		Strings:    req.Strings,
		Algorithm:  req.Algorithm,
		Salt:       req.Salt,
		RandomSalt: req.RandomSalt,
	})
	if err != nil {
		return nil, err
	}

	if resp.Salted {
		return SaltedComputeResponse{
			Algorithm: resp.Algorithm,
			Results: lo.Map(resp.Items, func(item usecase.HashItem, _ int) HashResult {
				return HashResult{
					Seq:       item.Seq,
					Digest:    item.Digest,
					Salt:      item.Salt,
					Algorithm: item.Algorithm,
				}
			}),
		}, nil
	}

	digests := resp.Digests
	if digests == nil {
		digests = []string{}
	}

	return PlainComputeResponse{
		Algorithm: resp.Algorithm,
		Digests:   digests,
	}, nil
}

// Salt returns a freshly generated random salt.
// @Summary Generate salt
// @Description Generates a 14-character random salt drawn without replacement from the service alphabet.
// @Tags Digest
// @Produce json
// @Success 200 {object} router.successResponse{data=SaltResponse} "Generated salt"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/digest/salt [get]
func (h *HTTPEndpoint) Salt(r *router.Request) (any, error) {
	resp, err := h.uc.SaltGenerate(r.Context())
	if err != nil {
		return nil, err
	}

	return SaltResponse{Salt: resp.Salt}, nil
}
