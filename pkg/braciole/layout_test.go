package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func testStyle() ResolvedStyle {
	return ResolveItemStyle(nil, nil, DefaultItemStyle(), true, false)
}

func TestCompactRendersIconOnly(t *testing.T) {
	spec := DefaultItemSpec("Copy")
	spec.Icon = Glyph{Code: ""}

	layout := BuildItemLayout(SizeClassCompact, spec, testStyle(), GroupContext{})

	require.NotNil(t, layout.Icon)
	assert.Nil(t, layout.Title, "compact shows no title")
	assert.Nil(t, layout.Indicator, "compact never shows the indicator")
	assert.Equal(t, layout.Bounds.W, layout.Bounds.H, "compact box is square")

	// Icon centered in the box.
	assert.Equal(t, layout.Bounds.W-layout.Icon.Rect.X-layout.Icon.Rect.W, layout.Icon.Rect.X)
}

func TestStandardStacksIconAboveTitle(t *testing.T) {
	spec := DefaultItemSpec("Share")
	spec.Icon = Glyph{Code: ""}

	layout := BuildItemLayout(SizeClassStandard, spec, testStyle(), GroupContext{})

	require.NotNil(t, layout.Icon)
	require.NotNil(t, layout.Title)
	assert.Nil(t, layout.Indicator, "standard never shows the indicator")
	assert.Equal(t, 1, layout.Title.MaxLines, "standard title is single-line")
	assert.Greater(t, layout.Title.Rect.Y, layout.Icon.Rect.Y, "title sits below the icon")
}

func TestCompactAndStandardRequireIcon(t *testing.T) {
	t.Setenv("ENVIRONMENT", "DEV")

	spec := DefaultItemSpec("No icon")

	assert.Panics(t, func() {
		BuildItemLayout(SizeClassCompact, spec, testStyle(), GroupContext{})
	})
	assert.Panics(t, func() {
		BuildItemLayout(SizeClassStandard, spec, testStyle(), GroupContext{})
	})
	assert.NotPanics(t, func() {
		BuildItemLayout(SizeClassFull, spec, testStyle(), GroupContext{})
	}, "full never requires icon content")
}

func TestZeroSizeClassIsFull(t *testing.T) {
	t.Setenv("ENVIRONMENT", "DEV")

	spec := DefaultItemSpec("No icon")

	var zero SizeClass
	assert.Equal(t, SizeClassFull, zero)

	layout := BuildItemLayout(zero, spec, testStyle(), GroupContext{})
	assert.Equal(t, SizeClassFull, layout.Variant)
	require.NotNil(t, layout.Title, "zero size class renders the full row")
}

func TestContractCheckSkippedOutsideDevMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")

	spec := DefaultItemSpec("No icon")

	assert.NotPanics(t, func() {
		BuildItemLayout(SizeClassCompact, spec, testStyle(), GroupContext{})
	})
}

func TestFullIndicatorVisibility(t *testing.T) {
	style := testStyle()

	t.Run("selected item shows indicator", func(t *testing.T) {
		spec := DefaultItemSpec("Bold")
		spec.Selected = boolPtr(true)

		layout := BuildItemLayout(SizeClassFull, spec, style, GroupContext{})
		require.NotNil(t, layout.Indicator)
		assert.True(t, layout.Indicator.Selected)
	})

	t.Run("unselected selectable item reserves indicator space", func(t *testing.T) {
		spec := DefaultItemSpec("Italic")
		spec.Selected = boolPtr(false)

		layout := BuildItemLayout(SizeClassFull, spec, style, GroupContext{})
		require.NotNil(t, layout.Indicator)
		assert.False(t, layout.Indicator.Selected)
	})

	t.Run("selectable group forces the slot on plain items", func(t *testing.T) {
		spec := DefaultItemSpec("Plain")

		layout := BuildItemLayout(SizeClassFull, spec, style, GroupContext{Selectable: true})
		assert.NotNil(t, layout.Indicator)
	})

	t.Run("non-selectable item in non-selectable group has none", func(t *testing.T) {
		spec := DefaultItemSpec("Plain")

		layout := BuildItemLayout(SizeClassFull, spec, style, GroupContext{})
		assert.Nil(t, layout.Indicator)
	})
}

func TestIndicatorBoundsAreSelectionNeutral(t *testing.T) {
	style := testStyle()

	selected := DefaultItemSpec("Bold")
	selected.Selected = boolPtr(true)
	unselected := DefaultItemSpec("Bold")
	unselected.Selected = boolPtr(false)

	withCheck := BuildItemLayout(SizeClassFull, selected, style, GroupContext{})
	withoutCheck := BuildItemLayout(SizeClassFull, unselected, style, GroupContext{})

	require.NotNil(t, withCheck.Indicator)
	require.NotNil(t, withoutCheck.Indicator)
	assert.Equal(t, withCheck.Indicator.Rect, withoutCheck.Indicator.Rect, "toggling selection must not shift siblings")
	assert.Equal(t, withCheck.Title.Rect, withoutCheck.Title.Rect)
}

func TestFullTitleTakesIndicatorSpaceWhenAbsent(t *testing.T) {
	style := testStyle()

	plain := DefaultItemSpec("Plain")
	selectable := DefaultItemSpec("Plain")
	selectable.Selected = boolPtr(false)

	without := BuildItemLayout(SizeClassFull, plain, style, GroupContext{})
	with := BuildItemLayout(SizeClassFull, selectable, style, GroupContext{})

	assert.Less(t, without.Title.Rect.X, with.Title.Rect.X, "title starts at the edge padding with no indicator")
	assert.Greater(t, without.Title.Rect.W, with.Title.Rect.W, "title gains the indicator's width")
	assert.Equal(t, without.Bounds.W, with.Bounds.W)
}

func TestFullLargeTextDropsTrailingIcon(t *testing.T) {
	style := testStyle()

	spec := DefaultItemSpec("Delete conversation")
	spec.Icon = Glyph{Code: ""}

	normal := BuildItemLayout(SizeClassFull, spec, style, GroupContext{TextScale: 1.0})
	large := BuildItemLayout(SizeClassFull, spec, style, GroupContext{TextScale: 1.5})

	require.NotNil(t, normal.Icon)
	assert.Equal(t, 2, normal.Title.MaxLines)

	assert.Nil(t, large.Icon, "trailing icon is omitted above the large-text threshold")
	assert.Equal(t, 3, large.Title.MaxLines)
	assert.Greater(t, large.Title.Rect.W, normal.Title.Rect.W, "title takes the icon's width")
}

func TestFullIndicatorGapScalesWithText(t *testing.T) {
	style := testStyle()

	spec := DefaultItemSpec("Select")
	spec.Selected = boolPtr(true)

	normal := BuildItemLayout(SizeClassFull, spec, style, GroupContext{TextScale: 1.0})
	large := BuildItemLayout(SizeClassFull, spec, style, GroupContext{TextScale: 1.5})

	normalGap := normal.Title.Rect.X - (normal.Indicator.Rect.X + normal.Indicator.Rect.W)
	largeGap := large.Title.Rect.X - (large.Indicator.Rect.X + large.Indicator.Rect.W)

	assert.Greater(t, largeGap, normalGap)
}

func TestThresholdIsExclusive(t *testing.T) {
	style := testStyle()

	spec := DefaultItemSpec("At threshold")
	spec.Icon = Glyph{Code: ""}

	at := BuildItemLayout(SizeClassFull, spec, style, GroupContext{TextScale: largeTextScale})

	assert.NotNil(t, at.Icon, "exactly at the threshold keeps the normal layout")
	assert.Equal(t, 2, at.Title.MaxLines)
}

func TestSemanticsAreMergedOntoLayout(t *testing.T) {
	spec := DefaultItemSpec("Archive")
	spec.Selected = boolPtr(true)

	layout := BuildItemLayout(SizeClassFull, spec, testStyle(), GroupContext{})

	assert.True(t, layout.Semantics.IsButton)
	assert.True(t, layout.Semantics.Enabled)
	require.NotNil(t, layout.Semantics.Selected)
	assert.True(t, *layout.Semantics.Selected)
	assert.Equal(t, "Archive", layout.Semantics.Label)
}

func TestCustomIconSatisfiesVariantContract(t *testing.T) {
	t.Setenv("ENVIRONMENT", "DEV")

	spec := DefaultItemSpec("Custom")
	spec.Icon = CustomIcon{SVG: []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)}

	assert.NotPanics(t, func() {
		BuildItemLayout(SizeClassCompact, spec, testStyle(), GroupContext{})
	})
}
