package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

func TestDispatchRecordsHistory(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st := New(zerolog.Nop(), Initial(), WithClock(func() time.Time { return at }))

	st.Dispatch(SaveTheme{Name: "Mine", Doc: theme.Cashable()})
	st.Dispatch(ChangeTheme{Name: "Mine"})
	st.Dispatch(ToggleDarkMode{Dark: true})

	hist := st.History()
	require.Len(t, hist, 3)
	assert.Equal(t, "dark", hist[0].Action)
	assert.Equal(t, "on", hist[0].Target)
	assert.Equal(t, "change", hist[1].Action)
	assert.Equal(t, "Mine", hist[1].Current)
	assert.Equal(t, "save", hist[2].Action)
	assert.Equal(t, theme.DefaultThemeName, hist[2].Current)
	for _, rec := range hist {
		_, err := uuid.Parse(rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, at, rec.At)
	}
	assert.NotEqual(t, hist[0].ID, hist[1].ID)

	s := st.State()
	assert.Equal(t, "Mine", s.CurrentName)
	assert.True(t, s.DarkMode)
}

func TestHistoryIsBounded(t *testing.T) {
	st := New(zerolog.Nop(), Initial(), WithHistorySize(2))
	st.Dispatch(SetLanguage{Code: "de-DE"})
	st.Dispatch(SetLanguage{Code: "nl-NL"})
	st.Dispatch(SetLanguage{Code: "es-ES"})

	hist := st.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "es-ES", hist[0].Target)
	assert.Equal(t, "nl-NL", hist[1].Target)

	hist[0].Target = "changed"
	assert.Equal(t, "es-ES", st.History()[0].Target)
}

func TestSubscribeOrderAndUnsubscribe(t *testing.T) {
	st := New(zerolog.Nop(), State{})
	var calls []string
	stopA := st.Subscribe(func(s State) { calls = append(calls, "a:"+s.Language) })
	st.Subscribe(func(s State) { calls = append(calls, "b:"+s.Language) })
	st.Subscribe(nil)

	st.Dispatch(SetLanguage{Code: "de-DE"})
	stopA()
	stopA()
	st.Dispatch(SetLanguage{Code: "es-ES"})

	assert.Equal(t, []string{"a:de-DE", "b:de-DE", "b:es-ES"}, calls)
}

func TestSubscriberMayReadState(t *testing.T) {
	st := New(zerolog.Nop(), Initial())
	var seen string
	st.Subscribe(func(State) { seen = st.State().Language })
	st.Dispatch(SetLanguage{Code: "nl-NL"})
	assert.Equal(t, "nl-NL", seen)
}

func TestConcurrentDispatch(t *testing.T) {
	st := New(zerolog.Nop(), Initial(), WithHistorySize(1000))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.Dispatch(SaveTheme{Name: "t" + string(rune('a'+i)), Doc: theme.Cashable()})
			_ = st.State().Names()
		}(i)
	}
	wg.Wait()

	assert.Len(t, st.History(), 20)
	assert.Len(t, st.State().Collection, len(theme.BuiltinNames)+20)
}

func TestNewWithoutCollection(t *testing.T) {
	st := New(zerolog.Nop(), State{})
	assert.NotNil(t, st.State().Collection)
	s := st.Dispatch(SaveTheme{Name: "x", Doc: theme.Baseline()})
	assert.True(t, s.Has("x"))
}

func TestReturnedStateIsDetached(t *testing.T) {
	st := New(zerolog.Nop(), Initial())

	got := st.State()
	got.Current.PaletteLight.Primary = "#000000"
	got.Collection["Injected"] = got.Current

	after := st.State()
	assert.Equal(t, theme.Cashable().PaletteLight.Primary, after.Current.PaletteLight.Primary)
	assert.False(t, after.Has("Injected"))
	assert.NotSame(t, after.Current, after.Collection[after.CurrentName])

	next := st.Dispatch(ToggleDarkMode{Dark: true})
	next.Collection[theme.DefaultThemeName].PaletteDark.Primary = "#000000"
	assert.Equal(t,
		theme.Cashable().PaletteDark.Primary,
		st.State().Collection[theme.DefaultThemeName].PaletteDark.Primary,
	)
}

func TestInitialStateIsCopied(t *testing.T) {
	initial := Initial()
	st := New(zerolog.Nop(), initial)
	initial.Current.PaletteLight.Primary = "#000000"
	delete(initial.Collection, theme.DefaultThemeName)

	s := st.State()
	assert.Equal(t, theme.Cashable().PaletteLight.Primary, s.Current.PaletteLight.Primary)
	assert.True(t, s.Has(theme.DefaultThemeName))
}

func TestApplyBuildsFromLatestState(t *testing.T) {
	st := New(zerolog.Nop(), Initial())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Apply(func(s State) (Action, error) {
				doc := theme.Clone(s.Current)
				doc.ZIndex.Drawer++
				return UpdateTheme{Doc: doc}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	base := theme.Cashable().ZIndex.Drawer
	assert.Equal(t, base+50, st.State().Current.ZIndex.Drawer)
	assert.Len(t, st.History(), 50)
}

func TestApplyDispatchesNothingOnError(t *testing.T) {
	st := New(zerolog.Nop(), Initial())
	_, err := st.Apply(func(State) (Action, error) {
		return nil, errdef.New(errdef.CodeValidation, "nope")
	})
	require.Error(t, err)
	assert.True(t, errdef.Is(err, errdef.CodeValidation))
	assert.Empty(t, st.History())
}
