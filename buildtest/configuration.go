package buildtest

import "github.com/roach88/buildassert/host"

// Configuration is a configuration whose resolved files are given up
// front. New configurations are consumable, declarable, resolvable and
// transitive.
type Configuration struct {
	name        string
	description string
	consumable  bool
	declarable  bool
	resolvable  bool
	transitive  bool
	files       FileSet
}

// NewConfiguration returns a configuration named name.
func NewConfiguration(name string) *Configuration {
	return &Configuration{
		name:       name,
		consumable: true,
		declarable: true,
		resolvable: true,
		transitive: true,
	}
}

func (c *Configuration) SetDescription(description string) *Configuration {
	c.description = description
	return c
}

func (c *Configuration) SetCanBeConsumed(consumable bool) *Configuration {
	c.consumable = consumable
	return c
}

func (c *Configuration) SetCanBeDeclared(declarable bool) *Configuration {
	c.declarable = declarable
	return c
}

func (c *Configuration) SetCanBeResolved(resolvable bool) *Configuration {
	c.resolvable = resolvable
	return c
}

func (c *Configuration) SetTransitive(transitive bool) *Configuration {
	c.transitive = transitive
	return c
}

// AddFiles adds paths to the resolved files.
func (c *Configuration) AddFiles(paths ...string) *Configuration {
	all := make([]string, 0, len(c.files)+len(paths))
	for _, f := range c.files {
		all = append(all, f.Path())
	}
	c.files = Files(append(all, paths...)...)
	return c
}

func (c *Configuration) Name() string { return c.name }
func (c *Configuration) Description() string { return c.description }
func (c *Configuration) CanBeConsumed() bool { return c.consumable }
func (c *Configuration) CanBeDeclared() bool { return c.declarable }
func (c *Configuration) CanBeResolved() bool { return c.resolvable }
func (c *Configuration) IsTransitive() bool { return c.transitive }

// Files implements host.FileCollection.
func (c *Configuration) Files() []host.File {
	return c.files.Files()
}

// String returns "configuration '<name>'".
func (c *Configuration) String() string {
	return "configuration '" + c.name + "'"
}
