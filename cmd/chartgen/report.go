package main

import "fmt"

// runReport prints angular size statistics for every figure.
func runReport() error {
	p, err := loadInputs()
	if err != nil {
		return err
	}
	fmt.Print(p.BuildRadiusReport().String())
	return nil
}
