package smallbitset

//go:generate go run ./internal/cmd/widthgen -max 128 -extra 192,256,512,1024 -o widths_gen.go -cases conformance/cases_gen.go
