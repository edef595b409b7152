package lightset

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lumascript/lumavm/errz"
)

// registryFile is the on-disk description of a registry:
//
//	[[light]]
//	name = "Top"
//	group = "Pole"
//	location = "Living Room"
//	multizone = false
type registryFile struct {
	Lights []Light `toml:"light"`
}

// Decode reads a TOML registry description.
func Decode(r io.Reader) (*Registry, error) {
	var f registryFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errz.Wrap(errz.Registry, err, "decoding registry")
	}
	return fromFile(&f, md)
}

// LoadFile reads a TOML registry description from the named file.
func LoadFile(path string) (*Registry, error) {
	var f registryFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errz.Wrap(errz.Registry, err, "reading registry %s", path)
	}
	return fromFile(&f, md)
}

func fromFile(f *registryFile, md toml.MetaData) (*Registry, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errz.Errorf(errz.Registry, "unknown keys: %s", strings.Join(keys, ", "))
	}
	reg := NewRegistry()
	for i, light := range f.Lights {
		if light.Name == "" {
			return nil, errz.Errorf(errz.Registry, "light %d has no name", i)
		}
		if _, dup := reg.Light(light.Name); dup {
			return nil, errz.Errorf(errz.Registry, "light %q listed more than once", light.Name)
		}
		reg.AddLight(light)
	}
	return reg, nil
}
