// Package stroke converts stroked polylines into closed fillable
// polygons.
//
// A stroke is converted to a FILL polygon where:
//   - The counter-clockwise offset side goes forward
//   - The clockwise offset side is traversed in reverse
//   - Line caps connect the endpoints of open subpaths
//   - Line joins bridge consecutive segments at shared vertices
//
// Each polyline segment carries an offset rectangle (a face) around it;
// joins are computed as closed-form intersections of neighboring offset
// lines. Faces are tagged horizontal, vertical, or diagonal so that
// axis-aligned segments never touch trigonometry.
package stroke
