//go:build js

package main

import (
	"strings"
	"syscall/js"
)

func protobufPreprocessFunction(this js.Value, p []js.Value) any {
	var out strings.Builder
	if err := preprocess(&out, strings.NewReader(p[0].String())); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("protobufPreprocess", js.FuncOf(protobufPreprocessFunction))

	<-c
}
