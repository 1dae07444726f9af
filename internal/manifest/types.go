package manifest

// Dep is one Python package requirement.
type Dep struct {
	Name       string // normalized (lowercase) package name
	Constraint string // "", "==X.Y.Z", or ">=X.Y.Z"
}

// String renders the dep in requirements.txt form.
func (d Dep) String() string {
	return d.Name + d.Constraint
}

// BaseDeps returns the skeleton's own requirements at known-good floors.
// Generated scripts import typer and rich directly; doc2md backs their
// doc subcommand.
func BaseDeps() []Dep {
	return []Dep{
		{Name: "typer", Constraint: ">=0.15.0"},
		{Name: "rich", Constraint: ">=13.7.1"},
		{Name: "doc2md", Constraint: ">=0.1.0"},
	}
}
