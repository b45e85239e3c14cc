// Package fixture loads project fixtures from YAML, CUE or HCL files and
// builds them into in-memory projects that assertions can run against.
//
// All three formats describe the same model. In YAML:
//
//	name: app
//	group: com.example
//	version: "1.0"
//	plugins: [java]
//	properties:
//	  answer: 42
//	providers:
//	  signingKey: {}          # absent
//	  versionCode: {value: 7}
//	configurations:
//	  - name: implementation
//	    can_be_consumed: false
//	    files: [libs/a.jar]
//	tasks:
//	  - name: compileJava
//	    group: build
//	    depends_on: [processResources]
//	    inputs: [src/main/java/App.java]
//
// A CUE fixture holds the same structure under the top-level field
// "project". An HCL fixture holds exactly one labeled project block with
// nested configuration, task and provider blocks.
//
// Relative paths in a fixture (the project dir, task inputs and outputs,
// configuration files and reports) resolve against the directory holding
// the fixture file.
package fixture
