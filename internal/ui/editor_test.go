package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"portfolio/internal/photo"
	"portfolio/internal/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const upperHalfGlyph = "▀"

func newTestEditor(t *testing.T) (*EditorView, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewEditorView(portfolio.New(), PageLayout{}, tp.Tracer("test")), sr
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestEditorView_InitialFocusIsBrowse(t *testing.T) {
	e, _ := newTestEditor(t)

	assert.Equal(t, FocusProfile, e.Focus.Current)
	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Equal(t, SectionProfile, e.ActiveSection())
}

func TestEditorView_TabCyclesFocus(t *testing.T) {
	e, _ := newTestEditor(t)

	want := []string{FocusSkill, FocusProjectTitle, FocusProjectDesc, FocusProjectAdd, FocusProfile}
	for _, w := range want {
		e.Update(keyMsg("tab"))
		assert.Equal(t, w, e.Focus.Current)
	}

	e.Update(keyMsg("shift+tab"))
	assert.Equal(t, FocusProjectAdd, e.Focus.Current)
	assert.Equal(t, ModeBrowse, e.Mode())

	e.Update(keyMsg("shift+tab"))
	assert.Equal(t, FocusProjectDesc, e.Focus.Current)
	assert.Equal(t, ModeInput, e.Mode())
}

func TestEditorView_AddSkillValid(t *testing.T) {
	e, sr := newTestEditor(t)
	e.Focus.SetFocus(FocusSkill)

	typeText(e, "Python")
	assert.Equal(t, "Python", e.Portfolio.NewSkill)

	e.Update(keyMsg("enter"))

	assert.Equal(t, []string{"Java", "HTML", "CSS", "Python"}, e.Portfolio.Skills)
	assert.Empty(t, e.Portfolio.NewSkill)
	assert.Empty(t, e.skillInput.Value(), "input should be cleared after a successful add")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "portfolio.add_skill", spans[0].Name())
	accepted, ok := spanAttr(spans[0], "portfolio.accepted")
	require.True(t, ok)
	assert.True(t, accepted.AsBool())
	count, _ := spanAttr(spans[0], "portfolio.skills")
	assert.Equal(t, int64(4), count.AsInt64())
}

func TestEditorView_AddSkillWhitespaceIsSilent(t *testing.T) {
	e, sr := newTestEditor(t)
	e.Focus.SetFocus(FocusSkill)

	typeText(e, "   ")
	e.Update(keyMsg("enter"))

	assert.Equal(t, portfolio.SeedSkills(), e.Portfolio.Skills)
	assert.Equal(t, "   ", e.Portfolio.NewSkill)
	assert.Equal(t, "   ", e.skillInput.Value())
	assert.NotContains(t, e.View(), "error")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	accepted, _ := spanAttr(spans[0], "portfolio.accepted")
	assert.False(t, accepted.AsBool())
}

func TestEditorView_AddSkillTrimsAndAllowsDuplicates(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Focus.SetFocus(FocusSkill)

	typeText(e, "  Java  ")
	e.Update(keyMsg("enter"))

	assert.Equal(t, []string{"Java", "HTML", "CSS", "Java"}, e.Portfolio.Skills)
}

func TestEditorView_AddProjectValid(t *testing.T) {
	e, sr := newTestEditor(t)
	e.Focus.SetFocus(FocusProjectTitle)

	typeText(e, "App")
	e.Update(keyMsg("enter")) // advances to description
	assert.Equal(t, FocusProjectDesc, e.Focus.Current)

	typeText(e, "A mobile app")
	e.Update(keyMsg("tab"))
	assert.Equal(t, FocusProjectAdd, e.Focus.Current)
	e.Update(keyMsg("enter"))

	require.Len(t, e.Portfolio.Projects, 3)
	assert.Equal(t, portfolio.Project{Title: "App", Description: "A mobile app"}, e.Portfolio.Projects[2])
	assert.Equal(t, portfolio.Project{}, e.Portfolio.NewProject)
	assert.Empty(t, e.titleInput.Value())
	assert.Empty(t, e.descInput.Value())

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "portfolio.add_project", spans[0].Name())
}

func TestEditorView_AddProjectMissingDescription(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Focus.SetFocus(FocusProjectTitle)
	typeText(e, "App")

	e.Focus.SetFocus(FocusProjectAdd)
	e.Update(keyMsg("enter"))

	assert.Len(t, e.Portfolio.Projects, 2)
	assert.Equal(t, portfolio.Project{Title: "App"}, e.Portfolio.NewProject)
	assert.Equal(t, "App", e.titleInput.Value())
}

func TestEditorView_DescriptionEnterInsertsNewline(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Focus.SetFocus(FocusProjectDesc)

	typeText(e, "line one")
	e.Update(keyMsg("enter"))
	typeText(e, "line two")

	assert.Equal(t, "line one\nline two", e.Portfolio.NewProject.Description)
	assert.Len(t, e.Portfolio.Projects, 2)
}

func TestEditorView_CtrlSAddsProjectFromField(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Portfolio.SetProjectTitle("CLI")
	e.Portfolio.SetProjectDescription("A terminal tool")
	e.Focus.SetFocus(FocusProjectDesc)

	e.Update(keyMsg("ctrl+s"))

	assert.Len(t, e.Portfolio.Projects, 3)
}

func TestEditorView_EnterOnProfileRequestsPicker(t *testing.T) {
	e, _ := newTestEditor(t)

	_, cmd := e.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, ShowPhotoPickerMsg{}, cmd())
}

func TestEditorView_TypingOnButtonDoesNothing(t *testing.T) {
	e, _ := newTestEditor(t)

	typeText(e, "xyz")

	assert.Empty(t, e.Portfolio.NewSkill)
	assert.Equal(t, portfolio.Project{}, e.Portfolio.NewProject)
}

func TestEditorView_SetPhoto(t *testing.T) {
	e, sr := newTestEditor(t)
	reg := photo.NewRegistry()
	ref, err := reg.Create(writeTestPNG(t, t.TempDir(), "me.png"))
	require.NoError(t, err)

	prev := e.SetPhoto(ref)

	assert.Nil(t, prev)
	assert.Same(t, ref, e.Portfolio.Photo)
	assert.Contains(t, e.View(), upperHalfGlyph)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "portfolio.set_photo", spans[0].Name())
	id, _ := spanAttr(spans[0], "portfolio.photo.id")
	assert.Equal(t, ref.ID, id.AsString())
}

func TestEditorView_SetPhotoUndecodable(t *testing.T) {
	e, _ := newTestEditor(t)
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	ref, err := photo.NewRegistry().Create(path)
	require.NoError(t, err)

	e.SetPhoto(ref)

	assert.Same(t, ref, e.Portfolio.Photo)

	assert.Contains(t, e.View(), "image unavailable")
}

func TestEditorView_JumpToScrollsAndFocuses(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Resize(80, 8)

	e.JumpTo(SectionProjects)
	assert.Equal(t, FocusProjectTitle, e.Focus.Current)
	assert.Equal(t, SectionProjects, e.ActiveSection())
	assert.Equal(t, e.Anchors()[SectionProjects], e.YOffset())
	assert.Positive(t, e.YOffset())

	e.JumpTo(SectionSkills)
	assert.Equal(t, FocusSkill, e.Focus.Current)
	assert.Equal(t, e.Anchors()[SectionSkills], e.YOffset())

	e.JumpTo(SectionProfile)
	assert.Equal(t, 0, e.YOffset())
}

func TestEditorView_JumpToResumeKeepsFocus(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Resize(80, 8)
	e.Focus.SetFocus(FocusSkill)

	e.JumpTo(SectionResume)

	assert.Equal(t, FocusSkill, e.Focus.Current)
	assert.Equal(t, SectionResume, e.ActiveSection())
	assert.Greater(t, e.YOffset(), e.Anchors()[SectionSkills])
}

func TestEditorView_ViewIsIdempotent(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Focus.SetFocus(FocusSkill)
	typeText(e, "Go")

	assert.Equal(t, e.View(), e.View())
}
