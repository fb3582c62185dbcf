package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/codec"
	"github.com/m-mizutani/xcsbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/utils/jsonfield"
)

type translateUseCase struct {
	encoder *codec.BlueprintEncoder
}

// NewTranslate creates a new instance of TranslateUseCase
func NewTranslate(idGen interfaces.IDGenerator) interfaces.TranslateUseCase {
	return &translateUseCase{
		encoder: codec.NewBlueprintEncoder(idGen),
	}
}

// DecodeBlueprint decodes an exported blueprint document
func (uc *translateUseCase) DecodeBlueprint(ctx context.Context, data []byte) (model.Blueprint, error) {
	logger := ctxlog.From(ctx)

	doc, err := jsonfield.Parse(data)
	if err != nil {
		return model.Blueprint{}, err
	}

	bp, err := codec.DecodeBlueprint(doc)
	if err != nil {
		logger.Warn("Failed to decode blueprint", "error", err)
		return model.Blueprint{}, goerr.Wrap(err, "failed to decode blueprint")
	}

	logger.Debug("Decoded blueprint",
		"name", bp.WCCName,
		"repository_id", bp.ProjectWCCIdentifier,
		"branch", bp.Branch,
		slog.Any("blueprint", bp),
	)

	return bp, nil
}

// EncodeBlueprint builds the preflight or bot creation payload of a blueprint
func (uc *translateUseCase) EncodeBlueprint(ctx context.Context, bp model.Blueprint, mode model.PayloadMode) (any, error) {
	logger := ctxlog.From(ctx)

	switch mode {
	case model.PayloadPreflight:
		logger.Debug("Encoding preflight payload", "repository_id", bp.ProjectWCCIdentifier)
		return uc.encoder.EncodeCredentialSubset(bp), nil

	case model.PayloadBotCreation:
		payload := uc.encoder.EncodeBotCreationPayload(bp)
		logger.Debug("Encoding bot creation payload",
			"repository_id", bp.ProjectWCCIdentifier,
			"identifier", payload.Identifier,
		)
		return payload, nil

	default:
		return nil, goerr.New("unsupported payload mode", goerr.V("mode", mode))
	}
}

// DecodeTestHierarchy decodes the per-device test result tree of an integration
func (uc *translateUseCase) DecodeTestHierarchy(ctx context.Context, data []byte) (model.TestHierarchy, error) {
	logger := ctxlog.From(ctx)

	doc, err := jsonfield.Parse(data)
	if err != nil {
		return model.TestHierarchy{}, err
	}

	h, err := codec.DecodeTestHierarchy(doc)
	if err != nil {
		logger.Warn("Failed to decode test hierarchy", "error", err)
		return model.TestHierarchy{}, goerr.Wrap(err, "failed to decode test hierarchy")
	}

	summary := h.Summary()
	logger.Debug("Decoded test hierarchy",
		"targets", len(h.TargetNames()),
		"total", summary.Total,
		"failed", summary.Failed,
	)

	return h, nil
}

// DecodeTriggerConditions decodes a trigger conditions record
func (uc *translateUseCase) DecodeTriggerConditions(ctx context.Context, data []byte) (model.TriggerConditions, error) {
	doc, err := jsonfield.Parse(data)
	if err != nil {
		return model.TriggerConditions{}, err
	}

	tc, err := codec.DecodeTriggerConditions(doc)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to decode trigger conditions", "error", err)
		return model.TriggerConditions{}, goerr.Wrap(err, "failed to decode trigger conditions")
	}
	return tc, nil
}
