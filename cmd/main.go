package main

import "github.com/m04kA/SMC-ReservationEngine/internal/cli"

func main() {
	cli.Execute()
}
