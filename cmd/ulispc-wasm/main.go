//go:build wasm

// Command ulispc-wasm builds the WebAssembly module a browser or other
// JS host loads to call into the transcoder and simulator.
package main

import "github.com/lupyuen/ulispc/pkg/wasmentry"

func main() {
	wasmentry.Register()
	select {} // keep the module alive for JS callbacks
}
