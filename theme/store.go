package theme

import (
	"github.com/metafates/gache"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/where"
)

// stateKey is the entry name under which the preference is stored.
const stateKey = "theme"

type fileStore struct {
	internal *gache.Cache[map[string]string]
}

// FileStore persists the preference in the shared state file at path.
func FileStore(path string) Store {
	return &fileStore{
		internal: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// DefaultStore persists to where.State().
func DefaultStore() Store {
	return FileStore(where.State())
}

func (s *fileStore) Load() (Appearance, bool, error) {
	state, _, err := s.internal.Get()
	if err != nil {
		return "", false, err
	}

	raw, ok := state[stateKey]
	if !ok {
		return "", false, nil
	}

	a, err := Parse(raw)
	if err != nil {
		return "", false, err
	}
	return a, true, nil
}

func (s *fileStore) Save(a Appearance) error {
	state, _, err := s.internal.Get()
	if err != nil || state == nil {
		state = make(map[string]string)
	}
	state[stateKey] = a.String()
	return s.internal.Set(state)
}
