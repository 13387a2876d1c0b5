package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner shared by the csqlite binaries.
func asciiArtTpl() string {
	asciiArt := `
   ____________ ____    __    _ __
  / ____/ ___// __ \  / /   (_) /____
 / /    \__ \/ / / / / /   / / __/ _ \
/ /___ ___/ / /_/ / / /___/ / /_/  __/
\____//____/\___\_\/_____/_/\__/\___/
%s ` + Version + `
For more information visit https://github.com/nsqlite/csqlite`

	asciiArt = asciiArt[1:]                          // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset // Add color to the ASCII art

	return asciiArt
}

// CLIVersion returns the version banner of the csqlite shell.
func CLIVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}

// BenchVersion returns the version banner of csqlitebench.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
