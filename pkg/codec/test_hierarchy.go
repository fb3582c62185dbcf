package codec

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
	"github.com/m-mizutani/xcsbridge/pkg/utils/jsonfield"
)

// DecodeTestHierarchy decodes the target -> class -> method -> device score
// tree. At the class and method levels the types.TestAggregateKey entry is
// decoded as an aggregate result and not descended into. Aggregates are taken
// as-is and never recomputed.
func DecodeTestHierarchy(doc jsonfield.Object) (model.TestHierarchy, error) {
	targets := make(map[string]model.TestTarget, len(doc))

	for targetName, v := range doc {
		targetData, err := jsonfield.AsObject(targetName, v)
		if err != nil {
			return model.TestHierarchy{}, err
		}

		target, err := decodeTestTarget(targetName, targetData)
		if err != nil {
			return model.TestHierarchy{}, err
		}
		targets[targetName] = target
	}

	return model.NewTestHierarchy(targets), nil
}

func decodeTestTarget(path string, data jsonfield.Object) (model.TestTarget, error) {
	classes := make(map[string]model.TestClass, len(data))

	for className, v := range data {
		classPath := path + "/" + className

		if className == types.TestAggregateKey {
			result, err := decodeTestResult(classPath, v)
			if err != nil {
				return model.TestTarget{}, err
			}
			classes[className] = model.NewAggregateClass(result)
			continue
		}

		classData, err := jsonfield.AsObject(classPath, v)
		if err != nil {
			return model.TestTarget{}, err
		}
		class, err := decodeTestClass(classPath, classData)
		if err != nil {
			return model.TestTarget{}, err
		}
		classes[className] = class
	}

	return model.NewTestTarget(classes)
}

func decodeTestClass(path string, data jsonfield.Object) (model.TestClass, error) {
	methods := make(map[string]model.TestMethod, len(data))

	for methodName, v := range data {
		result, err := decodeTestResult(path+"/"+methodName, v)
		if err != nil {
			return model.TestClass{}, err
		}

		if methodName == types.TestAggregateKey {
			methods[methodName] = model.NewAggregateMethod(result)
		} else {
			methods[methodName] = model.NewTestMethod(result)
		}
	}

	return model.NewTestClass(methods)
}

func decodeTestResult(path string, v any) (model.TestResult, error) {
	data, err := jsonfield.AsObject(path, v)
	if err != nil {
		return nil, err
	}

	result := make(model.TestResult, len(data))
	for device, score := range data {
		n, err := jsonfield.ToNumber(path+"/"+device, score)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid device score", goerr.V("path", path), goerr.V("device", device))
		}
		result[device] = n
	}
	return result, nil
}

// EncodeTestHierarchy converts the hierarchy back to its JSON object form,
// restoring aggregate entries under types.TestAggregateKey
func EncodeTestHierarchy(h model.TestHierarchy) map[string]any {
	out := make(map[string]any)

	for targetName, target := range h.Targets() {
		targetOut := make(map[string]any)

		for className, class := range target.Classes() {
			classOut := make(map[string]any)
			for methodName, method := range class.Methods() {
				classOut[methodName] = method.Result()
			}
			if agg, ok := class.Aggregate(); ok {
				classOut[types.TestAggregateKey] = agg
			}
			targetOut[className] = classOut
		}
		if agg, ok := target.Aggregate(); ok {
			targetOut[types.TestAggregateKey] = agg
		}

		out[targetName] = targetOut
	}

	return out
}
