// protobuf-preprocess rewrites map fields in a .proto file as explicit
// entry messages, for tools that do not understand the map shorthand.
//
// It reads the file named on the command line (or stdin, given -) and
// prints the result to stdout. Every other line is copied unchanged.
//
// Example:
//
//	protobuf-preprocess scores.proto
//
// Input:
//
//	message Scores {
//	  map<string, int32> by_player = 4;
//	}
//
// Output:
//
//	message Scores {
//	  message ByPlayerEntry {
//	    string key = 1;
//	    int32 value = 2;
//	  }
//	  repeated ByPlayerEntry by_player = 4;
//	}
package main
