package main

import "invest-aml-engine/internal/bootstrap/aml_engine"

func main() { aml_engine.StartEngineService() }
