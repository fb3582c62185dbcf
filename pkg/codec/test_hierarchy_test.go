package codec_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/xcsbridge/pkg/codec"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
	"github.com/m-mizutani/xcsbridge/pkg/utils/jsonfield"
)

const sampleTestHierarchy = `{
	"XcodeServerSDKTest": {
		"BotParsingTests": {
			"testParseOSXBot()": {"12345-67890": 1, "09876-54321": 0},
			"testShared()": {"12345-67890": 1, "09876-54321": 1},
			"_xcsAggrDeviceStatus": {"12345-67890": 1, "09876-54321": 0}
		},
		"_xcsAggrDeviceStatus": {"12345-67890": 1, "09876-54321": 0}
	}
}`

func parse(t *testing.T, data string) jsonfield.Object {
	t.Helper()
	doc, err := jsonfield.Parse([]byte(data))
	gt.NoError(t, err)
	return doc
}

func TestDecodeTestHierarchy(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(parse(t, sampleTestHierarchy))
	gt.NoError(t, err)

	gt.V(t, h.TargetNames()).Equal([]string{"XcodeServerSDKTest"})
	target, ok := h.Target("XcodeServerSDKTest")
	gt.True(t, ok)

	gt.V(t, target.ClassNames()).Equal([]string{"BotParsingTests"})
	targetAgg, ok := target.Aggregate()
	gt.True(t, ok)
	gt.V(t, targetAgg).Equal(model.TestResult{"12345-67890": 1, "09876-54321": 0})

	class, ok := target.Class("BotParsingTests")
	gt.True(t, ok)
	gt.False(t, class.IsAggregate())
	gt.V(t, class.MethodNames()).Equal([]string{"testParseOSXBot()", "testShared()"})

	method, ok := class.Method("testParseOSXBot()")
	gt.True(t, ok)
	gt.False(t, method.IsAggregate())
	gt.V(t, method.Result()).Equal(model.TestResult{"12345-67890": 1, "09876-54321": 0})
	gt.False(t, method.Result().Passed())

	classAgg, ok := class.Aggregate()
	gt.True(t, ok)
	gt.V(t, classAgg).Equal(model.TestResult{"12345-67890": 1, "09876-54321": 0})

	_, ok = class.Method(types.TestAggregateKey)
	gt.False(t, ok)
}

func TestDecodeTestHierarchy_NestedAggregate(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(parse(t, `{"T": {"C": {"m()": {"d1": 1}, "_xcsAggrDeviceStatus": {"d1": 1}}}}`))
	gt.NoError(t, err)

	gt.V(t, h.TargetNames()).Equal([]string{"T"})
	target, _ := h.Target("T")
	gt.V(t, target.ClassNames()).Equal([]string{"C"})
	_, ok := target.Aggregate()
	gt.False(t, ok)

	class, _ := target.Class("C")
	gt.V(t, class.Kind()).Equal(model.ClassRegular)
	gt.V(t, len(class.Methods())).Equal(1)

	method, ok := class.Method("m()")
	gt.True(t, ok)
	gt.V(t, method.Kind()).Equal(model.MethodRegular)
	gt.V(t, method.Result()).Equal(model.TestResult{"d1": 1})

	agg, ok := class.Aggregate()
	gt.True(t, ok)
	gt.V(t, agg).Equal(model.TestResult{"d1": 1})
}

func TestDecodeTestHierarchy_AggregateClassHasNoMethods(t *testing.T) {
	// the aggregate value would fail method decoding if it were descended into
	h, err := codec.DecodeTestHierarchy(parse(t, `{"T": {"_xcsAggrDeviceStatus": {"d1": 1, "d2": 0}}}`))
	gt.NoError(t, err)

	target, _ := h.Target("T")
	gt.V(t, len(target.Classes())).Equal(0)

	agg, ok := target.Aggregate()
	gt.True(t, ok)
	gt.V(t, agg).Equal(model.TestResult{"d1": 1, "d2": 0})

	class := model.NewAggregateClass(agg)
	gt.True(t, class.IsAggregate())
	gt.V(t, len(class.Methods())).Equal(0)
}

func TestDecodeTestHierarchy_TargetLevelHasNoSentinel(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(parse(t, `{"_xcsAggrDeviceStatus": {"C": {"m()": {"d1": 1}}}}`))
	gt.NoError(t, err)

	target, ok := h.Target(types.TestAggregateKey)
	gt.True(t, ok)
	gt.V(t, target.ClassNames()).Equal([]string{"C"})
}

func TestDecodeTestHierarchy_AggregatesAreTrusted(t *testing.T) {
	// aggregate claims success although a method failed
	h, err := codec.DecodeTestHierarchy(parse(t, `{"T": {"C": {"m()": {"d1": 0}, "_xcsAggrDeviceStatus": {"d1": 1}}}}`))
	gt.NoError(t, err)

	target, _ := h.Target("T")
	class, _ := target.Class("C")
	agg, _ := class.Aggregate()
	gt.True(t, agg.Passed())
	gt.V(t, h.Failures()).Equal([]string{"T/C/m()"})
}

func TestDecodeTestHierarchy_WrongType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		key      string
		expected string
	}{
		{
			name:     "target is not an object",
			input:    `{"T": 1}`,
			key:      "T",
			expected: "object",
		},
		{
			name:     "class is not an object",
			input:    `{"T": {"C": []}}`,
			key:      "T/C",
			expected: "object",
		},
		{
			name:     "method is not an object",
			input:    `{"T": {"C": {"m()": "passed"}}}`,
			key:      "T/C/m()",
			expected: "object",
		},
		{
			name:     "score is not numeric",
			input:    `{"T": {"C": {"m()": {"d1": "yes"}}}}`,
			key:      "T/C/m()/d1",
			expected: "number",
		},
		{
			name:     "aggregate score is not numeric",
			input:    `{"T": {"_xcsAggrDeviceStatus": {"d1": true}}}`,
			key:      "T/_xcsAggrDeviceStatus/d1",
			expected: "number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeTestHierarchy(parse(t, tt.input))
			gt.Error(t, err)

			var target *model.WrongTypeError
			gt.True(t, errors.As(err, &target))
			gt.V(t, target.Key).Equal(tt.key)
			gt.V(t, target.Expected).Equal(tt.expected)
		})
	}
}

func TestDecodeTestHierarchy_FloatScores(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(jsonfield.Object{
		"T": map[string]any{"C": map[string]any{"m()": map[string]any{"d1": 1.0, "d2": 0}}},
	})
	gt.NoError(t, err)

	target, _ := h.Target("T")
	class, _ := target.Class("C")
	method, _ := class.Method("m()")
	gt.V(t, method.Result()).Equal(model.TestResult{"d1": 1, "d2": 0})
}

func TestEncodeTestHierarchy_RoundTrip(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(parse(t, sampleTestHierarchy))
	gt.NoError(t, err)

	raw, err := json.Marshal(codec.EncodeTestHierarchy(h))
	gt.NoError(t, err)

	var got, want map[string]any
	gt.NoError(t, json.Unmarshal(raw, &got))
	gt.NoError(t, json.Unmarshal([]byte(sampleTestHierarchy), &want))
	gt.V(t, got).Equal(want)
}

func TestTestHierarchy_Summary(t *testing.T) {
	h, err := codec.DecodeTestHierarchy(parse(t, sampleTestHierarchy))
	gt.NoError(t, err)

	gt.V(t, h.Summary()).Equal(model.TestSummary{Total: 2, Passed: 1, Failed: 1})
	gt.V(t, h.Failures()).Equal([]string{"XcodeServerSDKTest/BotParsingTests/testParseOSXBot()"})
}

func TestTestHierarchy_AggregateKeyCollision(t *testing.T) {
	t.Run("regular method under aggregate key", func(t *testing.T) {
		_, err := model.NewTestClass(map[string]model.TestMethod{
			types.TestAggregateKey: model.NewTestMethod(model.TestResult{"d1": 1}),
		})
		var target *model.AggregateKeyCollisionError
		gt.True(t, errors.As(err, &target))
		gt.V(t, target.Path).Equal(types.TestAggregateKey)
	})

	t.Run("aggregate method under regular name", func(t *testing.T) {
		_, err := model.NewTestClass(map[string]model.TestMethod{
			"m()": model.NewAggregateMethod(model.TestResult{"d1": 1}),
		})
		var target *model.AggregateKeyCollisionError
		gt.True(t, errors.As(err, &target))
	})

	t.Run("regular class under aggregate key", func(t *testing.T) {
		class, err := model.NewTestClass(nil)
		gt.NoError(t, err)

		_, err = model.NewTestTarget(map[string]model.TestClass{types.TestAggregateKey: class})
		var target *model.AggregateKeyCollisionError
		gt.True(t, errors.As(err, &target))
	})
}
