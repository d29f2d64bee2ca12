// Package commands defines the snapreplay CLI.
//
// Commands
//
//   - run     Replay a JSON gesture script against a headless picker
//   - config  Print the effective widget configuration
//
// # Configuration
//
// Widget settings come from snapwheel.DefaultConfig, then an optional config
// file (--config, or snapwheel.{yaml,toml,json} in ~/.config/snapwheel), then
// SNAPWHEEL_* environment variables such as SNAPWHEEL_ITEM_HEIGHT=48 or
// SNAPWHEEL_THRESHOLD_TIME=300ms.
package commands
