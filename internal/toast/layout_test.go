package toast

import (
	"testing"

	"github.com/pveldrane/pill/internal/preset"
)

func TestComputeLayoutFixedWidth(t *testing.T) {
	m := PresetMetrics()
	l := computeLayout(Content{Title: "Saved"}, nil, m)
	if l.Size.Width != m.MaxContentWidth {
		t.Errorf("width = %d, want %d", l.Size.Width, m.MaxContentWidth)
	}
}

func TestComputeLayoutSingleLineHeight(t *testing.T) {
	m := PresetMetrics()
	l := computeLayout(Content{Title: "Saved"}, nil, m)
	want := m.Margins.Top + 1 + m.Margins.Bottom
	if l.Size.Height != want {
		t.Errorf("height = %d, want %d", l.Size.Height, want)
	}
}

func TestComputeLayoutCornerRadiusIsHalfHeight(t *testing.T) {
	m := PresetMetrics()
	for _, c := range []Content{
		{Title: "Saved"},
		{Title: "Saved", Subtitle: "Everything is up to date"},
		{Title: "A title long enough to wrap across several lines of the pill"},
	} {
		l := computeLayout(c, nil, m)
		if l.CornerRadius != float64(l.Size.Height)/2 {
			t.Errorf("content %q: corner radius = %v, want %v",
				c.Title, l.CornerRadius, float64(l.Size.Height)/2)
		}
	}
}

func TestComputeLayoutSubtitleAddsRows(t *testing.T) {
	m := PresetMetrics()
	without := computeLayout(Content{Title: "Saved"}, nil, m)
	with := computeLayout(Content{Title: "Saved", Subtitle: "details"}, nil, m)
	if with.Size.Height <= without.Size.Height {
		t.Errorf("subtitle height = %d, want > %d", with.Size.Height, without.Size.Height)
	}
	if len(with.SubtitleLines) == 0 {
		t.Error("subtitle lines empty")
	}
}

func TestComputeLayoutEmptySubtitleContributesNothing(t *testing.T) {
	m := PresetMetrics()
	l := computeLayout(Content{Title: "Saved", Subtitle: ""}, nil, m)
	if len(l.SubtitleLines) != 0 {
		t.Errorf("subtitle lines = %d, want 0", len(l.SubtitleLines))
	}
}

func TestComputeLayoutNoIcon(t *testing.T) {
	l := computeLayout(Content{Title: "Saved"}, nil, PresetMetrics())
	if l.IconRow != -1 {
		t.Errorf("IconRow = %d, want -1", l.IconRow)
	}
	if l.TextCol != PresetMetrics().Margins.Left {
		t.Errorf("TextCol = %d, want %d", l.TextCol, PresetMetrics().Margins.Left)
	}
}

func TestComputeLayoutIconShiftsText(t *testing.T) {
	m := PresetMetrics()
	preset.Init(preset.StyleUnicode)
	icon := preset.Resolve(preset.Error)
	l := computeLayout(Content{Title: "Failed"}, icon, m)

	if l.IconRow == -1 {
		t.Fatal("IconRow = -1, want placed")
	}
	if l.IconCol != m.Margins.Left {
		t.Errorf("IconCol = %d, want %d", l.IconCol, m.Margins.Left)
	}
	wantCol := m.Margins.Left + icon.Width() + m.IconSpacing
	if l.TextCol != wantCol {
		t.Errorf("TextCol = %d, want %d", l.TextCol, wantCol)
	}
}

func TestComputeLayoutLongTitleWraps(t *testing.T) {
	m := PresetMetrics()
	l := computeLayout(Content{
		Title: "A deliberately verbose title that cannot possibly fit on one pill row",
	}, nil, m)
	if len(l.TitleLines) < 2 {
		t.Errorf("title lines = %d, want wrapped", len(l.TitleLines))
	}
	for _, line := range l.TitleLines {
		if got := len([]rune(line)); got > l.TextWidth {
			t.Errorf("line %q width %d exceeds %d", line, got, l.TextWidth)
		}
	}
}

func TestComputeLayoutIconCenteredAgainstTallText(t *testing.T) {
	m := PresetMetrics()
	preset.Init(preset.StyleUnicode)
	icon := preset.Resolve(preset.Warning)
	l := computeLayout(Content{
		Title:    "Connection lost",
		Subtitle: "Retrying in the background until the server answers",
	}, icon, m)

	blockHeight := l.contentHeight(m)
	if blockHeight < 2 {
		t.Fatalf("block height = %d, want multi-row", blockHeight)
	}
	wantRow := m.Margins.Top + (blockHeight-1)/2
	if l.IconRow != wantRow {
		t.Errorf("IconRow = %d, want %d", l.IconRow, wantRow)
	}
}

func TestMessageMetricsWider(t *testing.T) {
	if MessageMetrics().MaxContentWidth <= PresetMetrics().MaxContentWidth {
		t.Error("message layout should be wider than preset layout")
	}
}
