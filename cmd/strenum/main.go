// Command strenum generates Go string enumerations from schema files.
//
//	strenum generate -f enums.yaml -o ./sample
//	strenum check -f enums.yaml
//	strenum watch -f enums.yaml -o ./sample
package main

func main() {
	Execute()
}
