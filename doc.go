// File: lixenwraith/dotenv/doc.go

// Package dotenv loads KEY=VALUE files into the environment and reads variables
// back as typed values: booleans, numbers, decimals, durations, bytes, lists,
// tuples, dicts and JSON.
//
// Features:
//   - Upward file discovery: relative names are searched from the working
//     directory to the filesystem root, so a project-root .env is found from any
//     subdirectory
//   - Existing variables are never overwritten; earlier files win over later ones
//   - Single-quoted values, doubly-quoted values with backslash escapes
//   - ${NAME} expansion against values already set
//   - Injectable Store (process environment or isolated in-memory map)
//   - Explicit defaults via Optional, distinct from falsy values
//   - Struct decoding with `env` tags, export to dotenv, TOML, YAML and JSON
//
// Quick Start:
//
//	dotenv.Load() // .env, then .env.local
//
//	debug, err := dotenv.Bool("DEBUG", false)
//	port, err := dotenv.Int("PORT")
//	hosts, err := dotenv.List("ALLOWED_HOSTS", []string{"localhost"})
//
// File Format:
//
//	# lines not matching NAME=VALUE are ignored
//	export HOST=example.com
//	GREETING='hello world'
//	ESCAPED=''it\'s''
//	URL=https://${HOST}/api
//
// Isolated Environments:
//
//	env, err := dotenv.NewBuilder().
//	    WithStore(dotenv.NewMapStore(nil)).
//	    WithWorkDir("testdata").
//	    WithLoad("app.env").
//	    Build()
//
// Errors:
// Reading an absent key without a default returns an error matching
// ErrKeyNotFound; a value that cannot be converted returns one matching ErrCast.
// Missing or unreadable files are never errors.
package dotenv
