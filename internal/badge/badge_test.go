package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

func render(t *testing.T, b *Badge, p Props) Tree {
	t.Helper()
	tree, err := b.Render(p)
	require.NoError(t, err)
	return tree
}

func TestRender_NoDetailIsInertForAllSeverities(t *testing.T) {
	t.Parallel()

	appearance := DefaultAppearance()
	for _, sev := range Severities() {
		sev := sev
		t.Run(sev.String(), func(t *testing.T) {
			t.Parallel()

			b := New(appearance)
			tree := render(t, b, Props{Label: "status", Severity: sev})

			assert.False(t, tree.Root.Interactive)
			assert.Nil(t, tree.Root.OnActivate)
			assert.Equal(t, appearance[sev], tree.Root.Color)
			assert.Equal(t, sev, tree.Root.Severity)
			assert.False(t, tree.Root.Content.HasHint())
			assert.Nil(t, tree.Panel)
		})
	}
}

func TestRender_ShortDetailOnly(t *testing.T) {
	t.Parallel()

	for _, sev := range Severities() {
		sev := sev
		t.Run(sev.String(), func(t *testing.T) {
			t.Parallel()

			b := New(nil)
			props := Props{Label: "status", Severity: sev, Detail: WithDetail{Short: "short"}}

			tree := render(t, b, props)
			require.True(t, tree.Root.Interactive)
			require.NotNil(t, tree.Panel)
			assert.False(t, tree.Panel.Visible)

			tree.Root.OnActivate()
			tree = render(t, b, props)

			require.NotNil(t, tree.Panel)
			assert.True(t, tree.Panel.Visible)
			assert.Equal(t, "short", tree.Panel.Short)
			assert.False(t, tree.Panel.HasFull())
			assert.Equal(t, DefaultAppearance()[sev], tree.Panel.Color)
		})
	}
}

func TestRender_ShortAndFullDetail(t *testing.T) {
	t.Parallel()

	for _, sev := range Severities() {
		b := New(nil)
		props := Props{Label: "status", Severity: sev, Detail: WithDetail{Short: "short", Full: "full text"}}

		render(t, b, props)
		b.ActivateRoot()
		tree := render(t, b, props)

		require.NotNil(t, tree.Panel, sev)
		assert.True(t, tree.Panel.Visible, sev)
		assert.Equal(t, "short", tree.Panel.Short, sev)
		assert.Equal(t, "full text", tree.Panel.Full, sev)
	}
}

func TestActivateRoot_EvenActivationsReturnToCollapsed(t *testing.T) {
	t.Parallel()

	b := New(nil)
	render(t, b, Props{Label: "status", Detail: WithDetail{Short: "short"}})

	for i := 0; i < 6; i++ {
		b.ActivateRoot()
		if i%2 == 0 {
			assert.Equal(t, Expanded, b.State())
		} else {
			assert.Equal(t, Collapsed, b.State())
		}
	}
}

func TestActivateRoot_NoDetailNeverExpands(t *testing.T) {
	t.Parallel()

	b := New(nil)
	for i := 0; i < 5; i++ {
		tree := render(t, b, Props{Label: "status"})
		assert.Nil(t, tree.Panel)
		b.ActivateRoot()
		assert.Equal(t, Collapsed, b.State())
	}
}

func TestActivateRoot_BeforeFirstRenderIsNoop(t *testing.T) {
	t.Parallel()

	b := New(nil)
	b.ActivateRoot()
	assert.Equal(t, Collapsed, b.State())
	assert.False(t, b.Interactive())
}

func TestActivateClose_AlwaysCollapses(t *testing.T) {
	t.Parallel()

	b := New(nil)
	props := Props{Label: "status", Detail: WithDetail{Short: "short"}}
	render(t, b, props)

	b.ActivateClose()
	assert.Equal(t, Collapsed, b.State(), "close is not a toggle")

	b.ActivateRoot()
	require.Equal(t, Expanded, b.State())

	tree := render(t, b, props)
	tree.Panel.OnClose()
	assert.Equal(t, Collapsed, b.State())
}

func TestRender_DetailRemovedResetsState(t *testing.T) {
	t.Parallel()

	b := New(nil)
	render(t, b, Props{Label: "status", Detail: WithDetail{Short: "short"}})
	b.ActivateRoot()
	require.True(t, b.Expanded())

	tree := render(t, b, Props{Label: "status"})
	assert.Nil(t, tree.Panel)
	assert.Equal(t, Collapsed, b.State())
	assert.False(t, b.Interactive())
}

func TestRender_DefaultsSeverityToInfo(t *testing.T) {
	t.Parallel()

	tree := render(t, New(nil), Props{Label: "status"})
	assert.Equal(t, SeverityInfo, tree.Root.Severity)
	assert.Equal(t, "#33b5e5", tree.Root.Color)
}

func TestRender_ForwardsAttributesVerbatim(t *testing.T) {
	t.Parallel()

	attrs := Attributes{"id": "prod-api", "data-owner": "sre"}
	tree := render(t, New(nil), Props{Label: "status", Attrs: attrs})
	assert.Equal(t, attrs, tree.Root.Attrs)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		props  Props
		target any
	}{
		{
			name:   "unknown severity",
			props:  Props{Label: "status", Severity: "unknown"},
			target: new(*ribbonerrors.ConfigurationError),
		},
		{
			name:   "blank short text",
			props:  Props{Label: "status", Detail: WithDetail{Short: "  ", Full: "full"}},
			target: new(*ribbonerrors.MalformedDetailError),
		},
		{
			name:   "blank label",
			props:  Props{Label: " "},
			target: new(*ribbonerrors.ValidationError),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := New(nil)
			tree, err := b.Render(tt.props)
			require.Error(t, err)
			require.ErrorAs(t, err, tt.target)
			assert.Equal(t, Tree{}, tree)
			assert.Equal(t, Collapsed, b.State())
		})
	}
}

func TestRender_ErrorLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	b := New(nil)
	render(t, b, Props{Label: "status", Detail: WithDetail{Short: "short"}})
	b.ActivateRoot()

	_, err := b.Render(Props{Label: "status", Severity: "bogus", Detail: WithDetail{Short: "short"}})
	require.Error(t, err)
	assert.Equal(t, Expanded, b.State())
}

func TestActivateRoot_AfterFailedRenderIsNoop(t *testing.T) {
	t.Parallel()

	b := New(nil)
	render(t, b, Props{Label: "status", Detail: WithDetail{Short: "short"}})
	require.True(t, b.Interactive())

	_, err := b.Render(Props{Label: "x", Severity: "bogus"})
	var configErr *ribbonerrors.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.False(t, b.Interactive())

	b.ActivateRoot()
	assert.Equal(t, Collapsed, b.State())

	tree := render(t, b, Props{Label: "status", Detail: WithDetail{Short: "short"}})
	require.NotNil(t, tree.Root.OnActivate)
	tree.Root.OnActivate()
	assert.Equal(t, Expanded, b.State())
}

func TestScenario_ServerDown(t *testing.T) {
	t.Parallel()

	b := New(nil)
	props := Props{
		Label:    "SERVER DOWN",
		Severity: SeverityDanger,
		Detail:   WithDetail{Short: "5xx spike", Full: "Error rate 40% since 10:02"},
	}

	tree := render(t, b, props)
	assert.Equal(t, Collapsed, b.State())
	assert.Equal(t, "SERVER DOWN", tree.Root.Content.Label)
	assert.Equal(t, MoreInfoHint, tree.Root.Content.Hint)
	require.NotNil(t, tree.Panel)
	assert.False(t, tree.Panel.Visible)

	tree.Root.OnActivate()
	tree = render(t, b, props)
	assert.Equal(t, Expanded, b.State())
	assert.True(t, tree.Panel.Visible)
	assert.Equal(t, "SERVER DOWN", tree.Panel.Heading)
	assert.Equal(t, CloseAffordance, tree.Panel.Close)
	assert.Equal(t, "5xx spike", tree.Panel.Short)
	assert.Equal(t, "Error rate 40% since 10:02", tree.Panel.Full)
	assert.Equal(t, "#ff4444", tree.Panel.Color)

	tree.Panel.OnClose()
	tree = render(t, b, props)
	assert.Equal(t, Collapsed, b.State())
	require.NotNil(t, tree.Panel, "panel stays constructed while collapsed")
	assert.False(t, tree.Panel.Visible)
}

func TestScenario_AllGood(t *testing.T) {
	t.Parallel()

	b := New(nil)
	props := Props{Label: "ALL GOOD", Severity: SeverityFine}

	tree := render(t, b, props)
	assert.Equal(t, "#00c851", tree.Root.Color)
	assert.Empty(t, tree.Root.Content.Hint)
	assert.Nil(t, tree.Panel)

	b.ActivateRoot()
	tree = render(t, b, props)
	assert.Equal(t, Collapsed, b.State())
	assert.Nil(t, tree.Panel)
}

func TestInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	props := Props{Label: "status", Detail: WithDetail{Short: "short"}}
	first, second := New(nil), New(nil)
	render(t, first, props)
	render(t, second, props)

	first.ActivateRoot()
	assert.Equal(t, Expanded, first.State())
	assert.Equal(t, Collapsed, second.State())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "collapsed", Collapsed.String())
	assert.Equal(t, "expanded", Expanded.String())
}

func TestSetAppearanceKeepsState(t *testing.T) {
	t.Parallel()

	b := New(nil)
	props := Props{Label: "status", Severity: SeverityWarning, Detail: WithDetail{Short: "short"}}
	render(t, b, props)
	b.ActivateRoot()

	b.SetAppearance(DefaultAppearance().Merge(Appearance{SeverityWarning: "214"}))
	tree := render(t, b, props)
	assert.Equal(t, "214", tree.Root.Color)
	assert.Equal(t, "214", tree.Panel.Color)
	assert.True(t, tree.Panel.Visible)
}
