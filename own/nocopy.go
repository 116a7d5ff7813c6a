package own

// noCopy is embedded into wrapper types that must not be duplicated by
// value: copying an owner would copy ownership. go vet's copylocks check
// reports such copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
