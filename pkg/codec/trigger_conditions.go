package codec

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
	"github.com/m-mizutani/xcsbridge/pkg/utils/jsonfield"
)

// DecodeTriggerConditions decodes a flat trigger conditions record.
// onInternalErrors is no longer sent by newer servers and defaults to false.
func DecodeTriggerConditions(doc jsonfield.Object) (model.TriggerConditions, error) {
	tc := model.TriggerConditions{Status: types.DefaultTriggerStatus}

	if status, ok := doc.OptionalInt(types.TriggerStatusKey); ok {
		tc.Status = status
	}
	tc.OnInternalErrors, _ = doc.OptionalBool(types.TriggerOnInternalErrorsKey)

	required := []struct {
		key string
		dst *bool
	}{
		{types.TriggerOnAnalyzerWarningsKey, &tc.OnAnalyzerWarnings},
		{types.TriggerOnBuildErrorsKey, &tc.OnBuildErrors},
		{types.TriggerOnFailingTestsKey, &tc.OnFailingTests},
		{types.TriggerOnSuccessKey, &tc.OnSuccess},
		{types.TriggerOnWarningsKey, &tc.OnWarnings},
	}
	for _, field := range required {
		v, err := doc.Bool(field.key)
		if err != nil {
			return model.TriggerConditions{}, goerr.Wrap(err, "failed to decode trigger conditions")
		}
		*field.dst = v
	}

	return tc, nil
}
