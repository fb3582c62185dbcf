package interfaces

import (
	"context"

	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
)

// TranslateUseCase converts Xcode Server JSON documents to typed models and back
type TranslateUseCase interface {
	// DecodeBlueprint decodes an exported blueprint document
	DecodeBlueprint(ctx context.Context, data []byte) (model.Blueprint, error)

	// EncodeBlueprint builds the preflight or bot creation payload of a blueprint
	EncodeBlueprint(ctx context.Context, bp model.Blueprint, mode model.PayloadMode) (any, error)

	// DecodeTestHierarchy decodes the per-device test result tree of an integration
	DecodeTestHierarchy(ctx context.Context, data []byte) (model.TestHierarchy, error)

	// DecodeTriggerConditions decodes a trigger conditions record
	DecodeTriggerConditions(ctx context.Context, data []byte) (model.TriggerConditions, error)
}
