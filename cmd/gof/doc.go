// Command gof lists or runs the pattern demos.
//
// Each demo is a short usage script from one pattern package. Running gof with
// no flags executes all of them in catalogue order, each under a heading:
//
//	gof
//	gof -only chain,iterator
//	gof -list -format yaml
//	gof -format json
//
// Flags
//
//   - -config <file>  YAML config file (default: ./gof.yaml if present)
//   - -only a,b       run only the named demos
//   - -list           print name, pattern and summary instead of running
//   - -format f       text, json or yaml; overrides output.format
//
// Configuration
//
// Values come from defaults, then the config file, then GOF_* env vars:
//
//	log:
//	  level: warn          # GOF_LOG_LEVEL
//	  encoding: console    # json | console
//	  file: ""             # rotated log file when set
//	output:
//	  format: text         # GOF_OUTPUT_FORMAT
//	  styled: true
//	demos: []              # GOF_DEMOS=chain,iterator
//
// Exit codes: 0 success, 1 a demo failed, 2 usage or config error.
package main
