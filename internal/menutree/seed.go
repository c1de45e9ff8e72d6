package menutree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSeed returns the built-in sidebar arrangement.
func DefaultSeed() Tree {
	return Tree{
		{Key: "1", Title: "Option 1", Icon: "◔"},
		{Key: "2", Title: "Option 2", Icon: "▣"},
		{Key: "sub1", Title: "group1", Icon: "☺", Kind: KindGroup, Children: []Entry{
			{Key: "3", Title: "Tom"},
			{Key: "4", Title: "Bill", Icon: "▣"},
			{Key: "5", Title: "Alex"},
		}},
		{Key: "sub2", Title: "group2", Icon: "☷", Kind: KindGroup, Children: []Entry{
			{Key: "6", Title: "Team 1"},
			{Key: "8", Title: "Team 2"},
		}},
		{Key: "9", Title: "group3", Icon: "▤", Kind: KindGroup},
	}
}

type seedFile struct {
	Entries []seedEntry `toml:"entry"`
}

type seedEntry struct {
	Key      string      `toml:"key"`
	Title    string      `toml:"title"`
	Icon     string      `toml:"icon"`
	Group    bool        `toml:"group"`
	Children []seedEntry `toml:"children"`
}

func (s seedEntry) entry() Entry {
	e := Entry{Key: s.Key, Title: s.Title, Icon: s.Icon}
	if s.Group || len(s.Children) > 0 {
		e.Kind = KindGroup
	}
	for _, child := range s.Children {
		e.Children = append(e.Children, child.entry())
	}
	return e
}

// LoadSeed reads an initial arrangement from a TOML file.
func LoadSeed(path string) (Tree, error) {
	var file seedFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return seedFromFile(file, meta, path)
}

// ParseSeed decodes an arrangement from TOML text.
func ParseSeed(data string) (Tree, error) {
	var file seedFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return seedFromFile(file, meta, "")
}

func seedFromFile(file seedFile, meta toml.MetaData, source string) (Tree, error) {
	prefix := "seed"
	if source != "" {
		prefix = "seed " + source
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys %s", prefix, strings.Join(keys, ", "))
	}
	tree := make(Tree, 0, len(file.Entries))
	for _, raw := range file.Entries {
		tree = append(tree, raw.entry())
	}
	if err := Validate(tree); err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	return tree, nil
}
