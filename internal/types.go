package internal

// Profile is one Brave user profile as recorded in the browser's
// Local State file. ID is the profile's directory name ("Default",
// "Profile 1", ...), Name the user-visible label.
type Profile struct {
	ID   string
	Name string
}

// Launcher is one desktop entry generated by this tool.
type Launcher struct {
	Path      string
	ProfileID string
	Title     string
}
