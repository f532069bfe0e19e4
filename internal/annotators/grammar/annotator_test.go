package grammar

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagar50802/law-network-client-sub002/internal/core/domain"
	"github.com/sagar50802/law-network-client-sub002/internal/markup/terminal"
)

// wrap builds the expected default wrapper.
func wrap(match, suggestion string) string {
	return `<span class="grammar-error" title="` + suggestion + `">` + match + `</span>`
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a := New()
		require.NotNil(t, a)
		assert.Equal(t, "html", a.markup.Name())
		assert.False(t, a.safeMode)
		assert.False(t, a.escape)
	})

	t.Run("nil markup ignored", func(t *testing.T) {
		a := New(WithMarkup(nil))
		assert.Equal(t, "html", a.markup.Name())
	})

	t.Run("safe mode", func(t *testing.T) {
		a := New(WithSafeMode(true))
		assert.True(t, a.safeMode)
		assert.True(t, a.escape)
	})

	t.Run("safe mode without escaping", func(t *testing.T) {
		a := New(WithSafeMode(true), WithEscape(false))
		assert.True(t, a.safeMode)
		assert.False(t, a.escape)
	})
}

func TestAnnotator_Name(t *testing.T) {
	assert.Equal(t, "grammar", New().Name())
}

func TestAnnotate_EmptyFindings(t *testing.T) {
	texts := []string{"", "plain text", "One. Two!", "<b>markup</b>"}

	for _, text := range texts {
		got, err := Annotate(text, nil)
		require.NoError(t, err)
		assert.Equal(t, text, got)

		got, err = Annotate(text, []domain.GrammarFinding{})
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestAnnotate_SingleFinding(t *testing.T) {
	got, err := Annotate("the foo is here", []domain.GrammarFinding{
		{Error: "foo", Suggestion: "use bar"},
	})

	require.NoError(t, err)
	assert.Equal(t, "the "+wrap("foo", "use bar")+" is here", got)
	assert.Equal(t, 1, strings.Count(got, "<span"))
}

func TestAnnotate_CaseInsensitiveEveryOccurrence(t *testing.T) {
	got, err := Annotate("foo and Foo", []domain.GrammarFinding{
		{Error: "foo", Suggestion: "bar"},
	})

	require.NoError(t, err)
	assert.Equal(t, wrap("foo", "bar")+" and "+wrap("Foo", "bar"), got)
}

func TestAnnotate_PatternNotLiteral(t *testing.T) {
	got, err := Annotate("Colour or color", []domain.GrammarFinding{
		{Error: "colou?r", Suggestion: "pick one spelling"},
	})

	require.NoError(t, err)
	assert.Equal(t, wrap("Colour", "pick one spelling")+" or "+wrap("color", "pick one spelling"), got)
}

func TestAnnotate_SuggestionIsLiteral(t *testing.T) {
	got, err := Annotate("foo", []domain.GrammarFinding{
		{Error: "(f)oo", Suggestion: "$1 costs $&"},
	})

	require.NoError(t, err)
	assert.Equal(t, wrap("foo", "$1 costs $&"), got)
}

func TestAnnotate_NoMatchLeavesTextUntouched(t *testing.T) {
	got, err := Annotate("nothing to see", []domain.GrammarFinding{
		{Error: "absent", Suggestion: "x"},
	})

	require.NoError(t, err)
	assert.Equal(t, "nothing to see", got)
}

func TestAnnotate_LaterFindingMatchesEarlierMarkup(t *testing.T) {
	// The second pattern runs against the output of the first, so it
	// matches the tag names inside the first wrapper.
	got, err := Annotate("a", []domain.GrammarFinding{
		{Error: "a", Suggestion: "x"},
		{Error: "span", Suggestion: "tag"},
	})

	require.NoError(t, err)
	expected := "<" + wrap("span", "tag") + ` class="grammar-error" title="x">a</` + wrap("span", "tag") + ">"
	assert.Equal(t, expected, got)
}

func TestAnnotate_LaterFindingMatchesEarlierSuggestion(t *testing.T) {
	got, err := Annotate("teh cat", []domain.GrammarFinding{
		{Error: "teh", Suggestion: "the"},
		{Error: "the", Suggestion: "THE!"},
	})

	require.NoError(t, err)
	assert.Equal(t, `<span class="grammar-error" title="`+wrap("the", "THE!")+`">teh</span> cat`, got)
}

func TestAnnotate_EarlierMarkupHidesLaterMatch(t *testing.T) {
	got, err := Annotate("its fine", []domain.GrammarFinding{
		{Error: "its", Suggestion: "it's"},
		{Error: "its fine", Suggestion: "sounds informal"},
	})

	require.NoError(t, err)
	// The second pattern no longer sees "its fine" as contiguous text.
	assert.Equal(t, wrap("its", "it's")+" fine", got)
}

func TestAnnotate_NotIdempotent(t *testing.T) {
	findings := []domain.GrammarFinding{{Error: "foo", Suggestion: "bar"}}

	once, err := Annotate("foo", findings)
	require.NoError(t, err)

	twice, err := Annotate(once, findings)
	require.NoError(t, err)

	// Re-applying wraps the already wrapped match again. Expected.
	assert.NotEqual(t, once, twice)
	assert.Equal(t, wrap(wrap("foo", "bar"), "bar"), twice)
}

func TestAnnotate_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unclosed group", "(unclosed"},
		{"lookahead", "foo(?=bar)"},
		{"dangling repeat", "*foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Annotate("foo bar", []domain.GrammarFinding{
				{Error: "foo", Suggestion: "fine"},
				{Error: tt.pattern, Suggestion: "broken"},
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPattern)
			assert.Empty(t, got)

			var pe *domain.PatternError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 1, pe.Index)
			assert.Equal(t, tt.pattern, pe.Pattern)
		})
	}
}

func TestAnnotator_Annotate(t *testing.T) {
	ctx := context.Background()
	a := New()

	t.Run("nil findings", func(t *testing.T) {
		got, err := a.Annotate(ctx, "foo", nil)
		require.NoError(t, err)
		assert.Equal(t, "foo", got)
	})

	t.Run("ignores ai findings", func(t *testing.T) {
		findings := &domain.Findings{
			AI: &domain.AIReport{Sentences: []domain.AISentenceFinding{{Index: 0, IsAI: true}}},
		}
		got, err := a.Annotate(ctx, "foo", findings)
		require.NoError(t, err)
		assert.Equal(t, "foo", got)
	})

	t.Run("applies grammar findings", func(t *testing.T) {
		findings := &domain.Findings{Grammar: []domain.GrammarFinding{{Error: "foo", Suggestion: "bar"}}}
		got, err := a.Annotate(ctx, "foo", findings)
		require.NoError(t, err)
		assert.Equal(t, wrap("foo", "bar"), got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		findings := &domain.Findings{Grammar: []domain.GrammarFinding{{Error: "foo", Suggestion: "bar"}}}
		_, err := a.Annotate(cancelled, "foo", findings)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAnnotator_TerminalMarkup(t *testing.T) {
	a := New(WithMarkup(terminal.New(nil)))

	got, err := a.Apply(context.Background(), "the foo is here", []domain.GrammarFinding{
		{Error: "foo", Suggestion: "use bar"},
	})

	require.NoError(t, err)
	assert.Equal(t, "the foo [use bar] is here", ansi.Strip(got))
}

func TestAnnotate_EmptyMatchAfterMatchSkipped(t *testing.T) {
	got, err := Annotate("baaac", []domain.GrammarFinding{{Error: "a*", Suggestion: "x"}})

	require.NoError(t, err)
	assert.Equal(t, wrap("", "x")+"b"+wrap("aaa", "x")+"c"+wrap("", "x"), got)
}

func TestAnnotator_SafeMode(t *testing.T) {
	ctx := context.Background()
	a := New(WithSafeMode(true))

	t.Run("escapes text and suggestion", func(t *testing.T) {
		got, err := a.Apply(ctx, "a <b> foo", []domain.GrammarFinding{
			{Error: "foo", Suggestion: `use "bar"`},
		})
		require.NoError(t, err)
		assert.Equal(t, "a &lt;b&gt; "+wrap("foo", "use &#34;bar&#34;"), got)
	})

	t.Run("does not match earlier markup", func(t *testing.T) {
		got, err := a.Apply(ctx, "a", []domain.GrammarFinding{
			{Error: "a", Suggestion: "x"},
			{Error: "span", Suggestion: "tag"},
		})
		require.NoError(t, err)
		assert.Equal(t, wrap("a", "x"), got)
	})

	t.Run("later finding wins overlap", func(t *testing.T) {
		got, err := a.Apply(ctx, "big cat", []domain.GrammarFinding{
			{Error: "big cat", Suggestion: "A"},
			{Error: "cat", Suggestion: "B"},
		})
		require.NoError(t, err)
		assert.Equal(t, "big "+wrap("cat", "B"), got)
	})

	t.Run("disjoint spans from several findings", func(t *testing.T) {
		got, err := a.Apply(ctx, "teh cat sat", []domain.GrammarFinding{
			{Error: "sat", Suggestion: "sits"},
			{Error: "teh", Suggestion: "the"},
		})
		require.NoError(t, err)
		assert.Equal(t, wrap("teh", "the")+" cat "+wrap("sat", "sits"), got)
	})

	t.Run("empty matches dropped", func(t *testing.T) {
		got, err := a.Apply(ctx, "ab", []domain.GrammarFinding{{Error: "x*", Suggestion: "none"}})
		require.NoError(t, err)
		assert.Equal(t, "ab", got)
	})

	t.Run("invalid pattern still fatal", func(t *testing.T) {
		_, err := a.Apply(ctx, "ab", []domain.GrammarFinding{{Error: "[", Suggestion: "none"}})
		assert.ErrorIs(t, err, domain.ErrInvalidPattern)
	})

	t.Run("idempotent on plain text", func(t *testing.T) {
		findings := []domain.GrammarFinding{{Error: "foo", Suggestion: "bar"}}
		first, err := a.Apply(ctx, "foo", findings)
		require.NoError(t, err)
		second, err := a.Apply(ctx, "foo", findings)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestAnnotate_Concurrent(t *testing.T) {
	findings := []domain.GrammarFinding{
		{Error: "foo", Suggestion: "bar"},
		{Error: "baz", Suggestion: "qux"},
	}
	expected, err := Annotate("foo baz foo", findings)
	require.NoError(t, err)

	a := New()
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = a.Apply(context.Background(), "foo baz foo", findings)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, expected, got)
	}
}
