package model

import (
	"maps"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/domain/types"
)

// TestResult maps a device identifier to its score, conventionally 0 (failed) or 1 (passed)
type TestResult map[string]float64

// Passed reports whether every device scored 1
func (r TestResult) Passed() bool {
	for _, score := range r {
		if score != 1 {
			return false
		}
	}
	return true
}

// MethodKind distinguishes a real test method from the aggregate entry of a class
type MethodKind int

const (
	MethodRegular MethodKind = iota
	MethodAggregate
)

// TestMethod is either a regular method result or the aggregated result of its siblings
type TestMethod struct {
	kind   MethodKind
	result TestResult
}

// NewTestMethod creates a regular method result
func NewTestMethod(result TestResult) TestMethod {
	return TestMethod{kind: MethodRegular, result: maps.Clone(result)}
}

// NewAggregateMethod creates the aggregate entry of a class
func NewAggregateMethod(result TestResult) TestMethod {
	return TestMethod{kind: MethodAggregate, result: maps.Clone(result)}
}

func (m TestMethod) Kind() MethodKind { return m.kind }
func (m TestMethod) IsAggregate() bool { return m.kind == MethodAggregate }
func (m TestMethod) Result() TestResult { return maps.Clone(m.result) }

// ClassKind distinguishes a real test class from the aggregate entry of a target
type ClassKind int

const (
	ClassRegular ClassKind = iota
	ClassAggregate
)

// TestClass is either a set of methods or the aggregated result of its sibling classes.
// A regular class keeps its own aggregate entry apart from its methods.
type TestClass struct {
	kind      ClassKind
	methods   map[string]TestMethod
	aggregate *TestMethod
	result    TestResult
}

// NewTestClass creates a regular class. The aggregate entry, if any, must be
// keyed by types.TestAggregateKey and hold an aggregate method.
func NewTestClass(methods map[string]TestMethod) (TestClass, error) {
	class := TestClass{
		kind:    ClassRegular,
		methods: make(map[string]TestMethod, len(methods)),
	}

	for name, method := range methods {
		isKey := name == types.TestAggregateKey
		if isKey != method.IsAggregate() {
			return TestClass{}, goerr.Wrap(&AggregateKeyCollisionError{Path: name}, "invalid test method entry",
				goerr.V("method", name),
				goerr.V("aggregate", method.IsAggregate()),
			)
		}
		if isKey {
			agg := method
			class.aggregate = &agg
			continue
		}
		class.methods[name] = method
	}

	return class, nil
}

// NewAggregateClass creates the aggregate entry of a target
func NewAggregateClass(result TestResult) TestClass {
	return TestClass{kind: ClassAggregate, result: maps.Clone(result)}
}

func (c TestClass) Kind() ClassKind { return c.kind }
func (c TestClass) IsAggregate() bool { return c.kind == ClassAggregate }

// Methods returns the regular methods of the class. Aggregate classes have none.
func (c TestClass) Methods() map[string]TestMethod {
	return maps.Clone(c.methods)
}

// MethodNames returns the regular method names in sorted order
func (c TestClass) MethodNames() []string {
	return slices.Sorted(maps.Keys(c.methods))
}

// Method looks up a regular method by name
func (c TestClass) Method(name string) (TestMethod, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Aggregate returns the aggregated per-device result. For an aggregate class
// this is the class itself; for a regular class it is its aggregate method entry.
func (c TestClass) Aggregate() (TestResult, bool) {
	if c.kind == ClassAggregate {
		return maps.Clone(c.result), true
	}
	if c.aggregate != nil {
		return c.aggregate.Result(), true
	}
	return nil, false
}

// TestTarget holds the classes of one test target
type TestTarget struct {
	classes   map[string]TestClass
	aggregate *TestClass
}

// NewTestTarget creates a target. The aggregate entry, if any, must be keyed
// by types.TestAggregateKey and hold an aggregate class.
func NewTestTarget(classes map[string]TestClass) (TestTarget, error) {
	target := TestTarget{classes: make(map[string]TestClass, len(classes))}

	for name, class := range classes {
		isKey := name == types.TestAggregateKey
		if isKey != class.IsAggregate() {
			return TestTarget{}, goerr.Wrap(&AggregateKeyCollisionError{Path: name}, "invalid test class entry",
				goerr.V("class", name),
				goerr.V("aggregate", class.IsAggregate()),
			)
		}
		if isKey {
			agg := class
			target.aggregate = &agg
			continue
		}
		target.classes[name] = class
	}

	return target, nil
}

// Classes returns the regular classes of the target
func (t TestTarget) Classes() map[string]TestClass {
	return maps.Clone(t.classes)
}

// ClassNames returns the regular class names in sorted order
func (t TestTarget) ClassNames() []string {
	return slices.Sorted(maps.Keys(t.classes))
}

// Class looks up a regular class by name
func (t TestTarget) Class(name string) (TestClass, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// Aggregate returns the target-wide aggregated result, if present
func (t TestTarget) Aggregate() (TestResult, bool) {
	if t.aggregate == nil {
		return nil, false
	}
	return t.aggregate.Aggregate()
}

// TestHierarchy is the per-device test outcome tree of an integration:
// target -> class -> method -> device score.
type TestHierarchy struct {
	targets map[string]TestTarget
}

// NewTestHierarchy creates a hierarchy from its targets
func NewTestHierarchy(targets map[string]TestTarget) TestHierarchy {
	return TestHierarchy{targets: maps.Clone(targets)}
}

// Targets returns all targets
func (h TestHierarchy) Targets() map[string]TestTarget {
	return maps.Clone(h.targets)
}

// TargetNames returns the target names in sorted order
func (h TestHierarchy) TargetNames() []string {
	return slices.Sorted(maps.Keys(h.targets))
}

// Target looks up a target by name
func (h TestHierarchy) Target(name string) (TestTarget, bool) {
	t, ok := h.targets[name]
	return t, ok
}

// TestSummary counts regular test methods by outcome
type TestSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summary counts regular methods. Aggregates are not recomputed nor counted.
func (h TestHierarchy) Summary() TestSummary {
	var s TestSummary
	h.walk(func(_ string, m TestMethod) {
		s.Total++
		if m.result.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	})
	return s
}

// Failures returns "target/class/method" paths of regular methods that did
// not pass on every device, in sorted order
func (h TestHierarchy) Failures() []string {
	var failures []string
	h.walk(func(path string, m TestMethod) {
		if !m.result.Passed() {
			failures = append(failures, path)
		}
	})
	return failures
}

func (h TestHierarchy) walk(fn func(path string, m TestMethod)) {
	for _, targetName := range h.TargetNames() {
		target := h.targets[targetName]
		for _, className := range target.ClassNames() {
			class := target.classes[className]
			for _, methodName := range class.MethodNames() {
				fn(targetName+"/"+className+"/"+methodName, class.methods[methodName])
			}
		}
	}
}
