// Package scene loads maze scene descriptions from YAML.
//
// A scene file holds one or more named scenes under a top-level "scenes"
// key. Each scene gives the window size, discretisation granularity, wall
// segments, goal disks, the agent's shape variants and its start pose:
//
//	scenes:
//	  Test1:
//	    window: [220, 200]
//	    granularity: 10
//	    walls:
//	      - [0, 100, 100, 100]
//	    goals:
//	      - [110, 40, 10]
//	    start: {x: 30, y: 120, shape: Ball}
//	    variants:
//	      - {orientation: Horizontal, length: 40, width: 11}
//	      - {orientation: Ball, width: 25}
//
// Documents are first checked against an embedded JSON Schema, then decoded
// and checked semantically (the start shape must be one of the variants).
package scene
