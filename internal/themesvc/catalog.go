package themesvc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/source"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

type Origin string

const (
	OriginBuiltin Origin = "builtin"
	OriginUser    Origin = "user"
)

// Definition is one theme known to the catalog.
type Definition struct {
	Key         string
	DisplayName string
	Doc         *theme.Document
	Origin      Origin
	// Format is empty for built-ins.
	Format Format
	Path   string
}

type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Len() int {
	return len(c.order)
}

func (c Catalog) Get(key string) (Definition, bool) {
	if c.index == nil {
		return Definition{}, false
	}
	idx, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

// Lookup finds a definition by key or, ignoring case, by display name.
func (c Catalog) Lookup(name string) (Definition, bool) {
	if def, ok := c.Get(name); ok {
		return def, true
	}
	if def, ok := c.Get(Slug(name)); ok {
		return def, true
	}
	for _, def := range c.order {
		if strings.EqualFold(def.DisplayName, strings.TrimSpace(name)) {
			return def, true
		}
	}
	return Definition{}, false
}

// Collection returns the catalog as a name to document map, keyed by
// display name, suitable for seeding a store.
func (c Catalog) Collection() map[string]*theme.Document {
	out := make(map[string]*theme.Document, len(c.order))
	for _, def := range c.order {
		out[def.DisplayName] = theme.Clone(def.Doc)
	}
	return out
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

// LoadCatalog lists the built-in themes followed by every readable theme
// file in dirs, sorted by display name. Files that fail to decode or
// validate are left out and reported in the joined error; the catalog
// returned alongside is still usable.
func LoadCatalog(dirs []string) (Catalog, error) {
	usedKeys := map[string]int{}
	defs := make([]Definition, 0, len(theme.BuiltinNames))
	for _, name := range theme.BuiltinNames {
		doc, _ := theme.Builtin(name)
		defs = append(defs, Definition{
			Key:         ensureUniqueKey(Slug(name), usedKeys),
			DisplayName: name,
			Doc:         doc,
			Origin:      OriginBuiltin,
		})
	}
	builtins := len(defs)

	var combinedErr error
	for _, dir := range searchDirs(dirs) {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				errdef.Wrap(errdef.CodeFilesystem, err, "themes: read directory %q", dir),
			)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			format, ok := FormatForPath(entry.Name())
			if !ok {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			def, err := loadUserTheme(path, format)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			def.Key = ensureUniqueKey(def.Key, usedKeys)
			if strings.TrimSpace(def.DisplayName) == "" {
				def.DisplayName = humaniseSlug(def.Key)
			}
			defs = append(defs, def)
		}
	}

	return assembleCatalog(defs, builtins), combinedErr
}

// searchDirs cleans dirs and drops blanks and repeats, keeping order.
func searchDirs(dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}

func loadUserTheme(path string, format Format) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, errdef.Wrap(errdef.CodeFilesystem, err, "read theme file")
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return Definition{}, errdef.New(errdef.CodeInvalidFormat, "theme file is empty")
	}
	doc, err := decode(format, text)
	if err != nil {
		return Definition{}, err
	}
	if err := theme.Validate(doc); err != nil {
		return Definition{}, err
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	displayName := ""
	if format == FormatSource {
		if name, ok := source.NameFromHeader(text); ok {
			displayName = name
		}
	}
	slug := Slug(displayName)
	if slug == "" {
		slug = Slug(baseName)
	}
	return Definition{
		Key:         slug,
		DisplayName: displayName,
		Doc:         doc,
		Origin:      OriginUser,
		Format:      format,
		Path:        path,
	}, nil
}

func assembleCatalog(defs []Definition, builtins int) Catalog {
	var catalog Catalog
	builtins = min(builtins, len(defs))
	for _, def := range defs[:builtins] {
		catalog.add(def)
	}
	custom := make([]Definition, len(defs)-builtins)
	copy(custom, defs[builtins:])
	sort.SliceStable(custom, func(i, j int) bool {
		left := strings.ToLower(custom[i].DisplayName)
		right := strings.ToLower(custom[j].DisplayName)
		if left == right {
			return custom[i].Key < custom[j].Key
		}
		return left < right
	})
	for _, def := range custom {
		catalog.add(def)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

// Slug lower-cases name, drops punctuation and joins words with dashes.
func Slug(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Theme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
