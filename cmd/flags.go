package cmd

// importFlags keeps values of the import command flags.
type importFlags struct {
	studies  []string
	analyses []string
	manifest string
	jobs     int
	quiet    bool
}
