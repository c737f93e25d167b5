package parameter

// RenderScale is world units per terminal cell horizontally, rows use twice this
const RenderScale = 10.0

// CameraMargin keeps the followed entity this many world units inside the view
const CameraMargin = 200.0
