package argverify_test

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argverify"
	"github.com/dmitrymomot/argverify/pkg/logger"
	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

var (
	str = argverify.Types(typeverify.TagString)
	num = argverify.Types(typeverify.TagNumber)
	fn  = argverify.Types(typeverify.TagFunction)
	re  = argverify.Types(typeverify.TagRegExp)
)

func TestCheck_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("all matching arguments pass", func(t *testing.T) {
		spec := argverify.Rules(
			argverify.Set(typeverify.InstanceOf[string]()),
			num,
			argverify.Types(typeverify.TagArray, typeverify.TagRegExp),
		)

		res := argverify.Check(spec, []any{"name", 6, []int{1, 2, 3}})
		assert.True(t, res.Passed)
		assert.Nil(t, res.Diagnostic)
		assert.NoError(t, res.Err())
	})

	t.Run("short list under an empty rule-set reports a missing argument", func(t *testing.T) {
		spec := argverify.Rules(
			argverify.Types(typeverify.TagRegExp),
			argverify.Any(),
			argverify.Any(),
		)

		res := argverify.Check(spec, []any{regexp.MustCompile("^a"), []int{}})
		require.False(t, res.Passed)
		require.NotNil(t, res.Diagnostic)
		assert.Equal(t, &argverify.Diagnostic{Position: 2}, res.Diagnostic)
		assert.True(t, res.Diagnostic.Missing())
	})

	t.Run("repeated tail needs no arguments", func(t *testing.T) {
		spec := argverify.Rules(fn, num, argverify.Repeat(3))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{func() {}}))
	})

	t.Run("repeated tail checks each covered argument", func(t *testing.T) {
		spec := argverify.Rules(fn, num, argverify.Repeat(3))

		res := argverify.Check(spec, []any{func() {}, 1, "bad"})
		require.False(t, res.Passed)
		assert.Equal(t, 2, res.Diagnostic.Position)
		assert.Equal(t, "bad", res.Diagnostic.Value)
		assert.Equal(t, []string{"Number"}, res.Diagnostic.Expected.Type)
		assert.Equal(t, []string{"String"}, res.Diagnostic.Actual.Type)
	})

	t.Run("absent argument under a typed bare rule-set is compared as undefined", func(t *testing.T) {
		spec := argverify.Rules(
			argverify.Types(typeverify.TagBoolean),
			argverify.Set(typeverify.InstanceOf[bool]()),
			argverify.Types(typeverify.TagNull),
		)

		res := argverify.Check(spec, []any{true, false})
		require.False(t, res.Passed)
		d := res.Diagnostic
		assert.Equal(t, 2, d.Position)
		assert.False(t, d.Missing())
		assert.Equal(t, typeverify.Undefined, d.Value)
		assert.Equal(t, []string{"Null"}, d.Expected.Type)
		assert.Equal(t, []string{"Undefined"}, d.Actual.Type)
	})
}

func TestCheck_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("trailing arguments beyond the rules are ignored", func(t *testing.T) {
		spec := argverify.Rules(str, num)
		assert.True(t, argverify.ArgumentsVerify(spec, []any{"a", 1, "anything", nil, func() {}}))
	})

	t.Run("empty rules accept any argument list", func(t *testing.T) {
		assert.True(t, argverify.ArgumentsVerify(nil, nil))
		assert.True(t, argverify.ArgumentsVerify(nil, []any{1, "2"}))
	})

	t.Run("empty rule-set accepts any present value", func(t *testing.T) {
		spec := argverify.Rules(argverify.Any())
		assert.True(t, argverify.ArgumentsVerify(spec, []any{nil}))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{typeverify.Undefined}))
	})

	t.Run("undefined in a rule-set accepts absence", func(t *testing.T) {
		spec := argverify.Rules(str, argverify.Types(typeverify.TagNumber, typeverify.TagUndefined))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{"a"}))
		assert.False(t, argverify.ArgumentsVerify(spec, []any{"a", "b"}))
	})

	t.Run("repeated entry checks at most its count", func(t *testing.T) {
		spec := argverify.Rules(num, argverify.Repeat(2))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{1, 2, "not checked"}))
		assert.False(t, argverify.ArgumentsVerify(spec, []any{1, "checked"}))
	})

	t.Run("max int repeat covers the rest of the arguments", func(t *testing.T) {
		spec := argverify.Rules(str, num, argverify.Repeat(math.MaxInt))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{"a", 1, 2, 3}))

		res := argverify.Check(spec, []any{"a", "not a number"})
		require.False(t, res.Passed)
		assert.Equal(t, 1, res.Diagnostic.Position)

		res = argverify.Check(spec, []any{"a", 1, 2, "late"})
		require.False(t, res.Passed)
		assert.Equal(t, 3, res.Diagnostic.Position)
	})

	t.Run("zero repeat checks nothing", func(t *testing.T) {
		spec := argverify.Rules(str, num, argverify.Repeat(0))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{"a", "not a number"}))
	})

	t.Run("first failure wins", func(t *testing.T) {
		spec := argverify.Rules(str, num, num)
		res := argverify.Check(spec, []any{"a", "b", "c"})
		require.False(t, res.Passed)
		assert.Equal(t, 1, res.Diagnostic.Position)
	})

	t.Run("wrong type at position zero", func(t *testing.T) {
		res := argverify.Check(argverify.Rules(re), []any{"^a"}, argverify.WithLabel("Match"))
		require.False(t, res.Passed)
		assert.Equal(t, "Match", res.Diagnostic.Label)
		assert.Equal(t, 0, res.Diagnostic.Position)
	})

	t.Run("malformed spec is truncated by default", func(t *testing.T) {
		spec := argverify.Rules(str, argverify.Repeat(1), num)
		assert.True(t, argverify.ArgumentsVerify(spec, []any{"a", "b"}))
	})

	t.Run("strict rules panic on malformed spec", func(t *testing.T) {
		spec := argverify.Rules(str, argverify.Repeat(1), num)
		assert.Panics(t, func() {
			argverify.Check(spec, []any{"a"}, argverify.WithStrictRules())
		})
	})

	t.Run("instance descriptors from third-party types", func(t *testing.T) {
		spec := argverify.Rules(argverify.Set(typeverify.InstanceOf[uuid.UUID]()))
		assert.True(t, argverify.ArgumentsVerify(spec, []any{uuid.New()}))

		res := argverify.Check(spec, []any{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
		require.False(t, res.Passed)
		assert.Equal(t, []string{"uuid.UUID"}, res.Diagnostic.Expected.Instance)
		assert.Equal(t, []string{"string"}, res.Diagnostic.Actual.Instance)
	})
}

func TestCheck_MissingPolicy(t *testing.T) {
	t.Parallel()

	spec := argverify.Rules(str, num)

	t.Run("report policy uses the missing form for typed rule-sets", func(t *testing.T) {
		res := argverify.Check(spec, []any{"a"},
			argverify.WithLabel("Sum"),
			argverify.WithMissingPolicy(argverify.MissingReport),
		)
		require.False(t, res.Passed)
		assert.Equal(t, &argverify.Diagnostic{Label: "Sum", Position: 1}, res.Diagnostic)
	})

	t.Run("report policy leaves repeated tails optional", func(t *testing.T) {
		res := argverify.Check(argverify.Rules(str, num, argverify.Repeat(2)), []any{"a"},
			argverify.WithMissingPolicy(argverify.MissingReport),
		)
		assert.True(t, res.Passed)
	})

	t.Run("unknown policy panics", func(t *testing.T) {
		assert.Panics(t, func() {
			argverify.Check(spec, nil, argverify.WithMissingPolicy(argverify.MissingPolicy(9)))
		})
	})

	t.Run("parse", func(t *testing.T) {
		p, err := argverify.ParseMissingPolicy("Report")
		require.NoError(t, err)
		assert.Equal(t, argverify.MissingReport, p)

		p, err = argverify.ParseMissingPolicy("")
		require.NoError(t, err)
		assert.Equal(t, argverify.MissingCompare, p)

		_, err = argverify.ParseMissingPolicy("skip")
		assert.ErrorIs(t, err, argverify.ErrInvalidMissingPolicy)
	})

	t.Run("text round trip", func(t *testing.T) {
		text, err := argverify.MissingReport.MarshalText()
		require.NoError(t, err)

		var p argverify.MissingPolicy
		require.NoError(t, p.UnmarshalText(text))
		assert.Equal(t, argverify.MissingReport, p)
	})
}

func TestCheck_ResultHandler(t *testing.T) {
	t.Parallel()

	t.Run("called once with the returned values", func(t *testing.T) {
		var (
			calls     int
			gotDiag   *argverify.Diagnostic
			gotPassed bool
		)
		res := argverify.Check(argverify.Rules(num), []any{"x"},
			argverify.WithResultHandler(func(d *argverify.Diagnostic, passed bool) {
				calls++
				gotDiag, gotPassed = d, passed
			}),
		)

		assert.Equal(t, 1, calls)
		assert.Same(t, res.Diagnostic, gotDiag)
		assert.Equal(t, res.Passed, gotPassed)
	})

	t.Run("called on success with nil diagnostic", func(t *testing.T) {
		calls := 0
		ok := argverify.ArgumentsVerify(argverify.Rules(num), []any{1},
			argverify.WithResultHandler(func(d *argverify.Diagnostic, passed bool) {
				calls++
				assert.Nil(t, d)
				assert.True(t, passed)
			}),
		)
		assert.True(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil handler is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			argverify.Check(argverify.Rules(num), nil, argverify.WithResultHandler(nil))
		})
	})
}

func TestVerifyWith(t *testing.T) {
	t.Parallel()

	t.Run("returns the consumer result", func(t *testing.T) {
		err := argverify.VerifyWith(argverify.Rules(str), []any{1},
			func(d *argverify.Diagnostic, passed bool) error {
				if passed {
					return nil
				}
				return d
			},
			argverify.WithLabel("Greet"),
		)

		require.Error(t, err)
		d := argverify.ExtractDiagnostic(err)
		require.NotNil(t, d)
		assert.Equal(t, "Greet", d.Label)
	})

	t.Run("consumer replaces the configured handler", func(t *testing.T) {
		handlerCalls, consumerCalls := 0, 0
		got := argverify.VerifyWith(argverify.Rules(str), []any{"a"},
			func(_ *argverify.Diagnostic, passed bool) string {
				consumerCalls++
				if passed {
					return "ok"
				}
				return "bad"
			},
			argverify.WithResultHandler(func(*argverify.Diagnostic, bool) { handlerCalls++ }),
		)

		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, consumerCalls)
		assert.Zero(t, handlerCalls)
	})
}

func TestCheck_Comparator(t *testing.T) {
	t.Parallel()

	t.Run("custom comparator is used", func(t *testing.T) {
		var seen []any
		cmp := func(value any, descriptors []typeverify.Descriptor, report typeverify.ReportFunc) bool {
			seen = append(seen, value)
			return typeverify.Verify(value, descriptors, report)
		}

		ok := argverify.ArgumentsVerify(argverify.Rules(str, num), []any{"a", 1, 2}, argverify.WithComparator(cmp))
		assert.True(t, ok)
		assert.Equal(t, []any{"a", 1}, seen)
	})

	t.Run("silent comparator failure still yields shapes", func(t *testing.T) {
		cmp := func(any, []typeverify.Descriptor, typeverify.ReportFunc) bool { return false }

		res := argverify.Check(argverify.Rules(num), []any{"x"}, argverify.WithComparator(cmp))
		require.False(t, res.Passed)
		require.NotNil(t, res.Diagnostic.Expected)
		assert.Equal(t, []string{"Number"}, res.Diagnostic.Expected.Type)
		assert.Equal(t, []string{"String"}, res.Diagnostic.Actual.Type)
	})
}

func TestCheck_Logger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("development"))

	res := argverify.Check(argverify.Rules(num), []any{"x"}, argverify.WithLogger(log), argverify.WithLabel("Add"))
	require.False(t, res.Passed)

	out := buf.String()
	assert.Contains(t, out, "argument verification failed")
	assert.Contains(t, out, "label=Add")
	assert.Contains(t, out, "position=0")
	assert.Contains(t, out, "missing=false")
}

func TestCheck_Concurrent(t *testing.T) {
	t.Parallel()

	spec := argverify.Rules(str, num, argverify.Repeat(3))
	v := argverify.New(argverify.WithLabel("concurrent"))

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			args := []any{"a", 1, 2}
			if i%2 == 1 {
				args = append(args, "bad")
			}
			res := v.Check(spec, args)
			if i%2 == 1 {
				assert.False(t, res.Passed)
				assert.Equal(t, 3, res.Diagnostic.Position)
			} else {
				assert.True(t, res.Passed)
			}
		}(i)
	}
	wg.Wait()
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	t.Run("missing form", func(t *testing.T) {
		d := &argverify.Diagnostic{Label: "Open", Position: 1}
		assert.True(t, d.Missing())
		assert.Equal(t, "argverify: Open: argument 1 is missing", d.Error())
		assert.Equal(t, "argverify.missing", d.TranslationKey())
		assert.Equal(t, map[string]any{"label": "Open", "position": 1}, d.TranslationValues())
	})

	t.Run("mismatch form", func(t *testing.T) {
		res := argverify.Check(argverify.Rules(num), []any{"x"})
		d := res.Diagnostic
		require.NotNil(t, d)
		assert.False(t, d.Missing())
		assert.Equal(t, "argverify: argument 0: expected type[Number] instance[], got type[String] instance[string]", d.Error())
		assert.Equal(t, "argverify.mismatch", d.TranslationKey())
		assert.Equal(t, "type[Number] instance[]", d.TranslationValues()["expected"])
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		res := argverify.Check(argverify.Rules(num), []any{"x"})
		wrapped := errors.Join(errors.New("create user"), res.Err())

		assert.True(t, argverify.IsDiagnostic(wrapped))
		assert.Same(t, res.Diagnostic, argverify.ExtractDiagnostic(wrapped))
		assert.False(t, argverify.IsDiagnostic(errors.New("other")))
		assert.Nil(t, argverify.ExtractDiagnostic(nil))
	})
}
