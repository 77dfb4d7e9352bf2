package service

import (
	"context"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/form"
	"github.com/rs/zerolog/log"
)

type GuideServiceImpl struct {
	encoder *encoder.Encoder
}

func CreateGuideService(encoder *encoder.Encoder) GuideService {
	return &GuideServiceImpl{
		encoder: encoder,
	}
}

// CreateGuide assembles a guide record from the submitted fields and optional photo.
func (s *GuideServiceImpl) CreateGuide(ctx context.Context, req dto.GuideRequest, image encoder.File) (resp dto.GuideResponse, err error) {
	var guide *domain.Guide
	section := form.NewGuideSection(func(ev form.Event) {
		if added, ok := ev.(form.GuideAdded); ok {
			guide = &added.Guide
		}
	})

	section.Name = req.Name
	section.Email = req.Email
	section.GuideCode = req.GuideCode
	section.Introduction = req.Introduction
	section.AttachImage(s.encoder.Encode(ctx, image))

	resp.Committed = section.Commit()
	resp.Guide = guide
	if !resp.Committed {
		log.Ctx(ctx).Info().Str("component", "CreateGuide").Msg("guide is incomplete, nothing created")
	}

	return resp, nil
}
