package interpreter

type keywordEntry struct {
	phrase string
	tag    string
}

// Keyword tables are immutable after init and matched by substring
// containment against the lowered command text, in definition order with the
// first match winning. Phrases that contain other phrases ("圆弧" vs "圆",
// "多段线" vs "线", "polyline" vs "line") are listed most-specific first so a
// partial containment never shadows the intended tag.
var shapeKeywords = []keywordEntry{
	// Basic shapes.
	{"尺寸标注", "dimension"},
	{"标注", "dimension"},
	{"多段线", "polyline"},
	{"折线", "polyline"},
	{"直线", "line"},
	{"圆弧", "arc"},
	{"圆形", "circle"},
	{"正方形", "square"},
	{"方形", "rectangle"},
	{"矩形", "rectangle"},
	{"圆", "circle"},
	{"弧", "arc"},
	{"线", "line"},
	{"文本", "text"},
	{"文字", "text"},
	{"填充", "hatch"},

	// Architectural elements.
	{"墙体", "wall"},
	{"墙", "wall"},
	{"门", "door"},
	{"窗", "window"},
	{"楼梯", "stair"},
	{"柱子", "column"},

	// Electrical elements.
	{"插座", "outlet"},
	{"开关", "switch"},
	{"灯具", "light"},
	{"灯", "light"},
	{"配电箱", "distribution_box"},

	// Mechanical elements.
	{"轴承", "bearing"},
	{"轴", "shaft"},
	{"齿轮", "gear"},
	{"法兰", "flange"},

	// English surface forms.
	{"dimension", "dimension"},
	{"polyline", "polyline"},
	{"rectangle", "rectangle"},
	{"square", "square"},
	{"circle", "circle"},
	{"hatch", "hatch"},
	{"text", "text"},
	{"wall", "wall"},
	{"line", "line"},
	{"arc", "arc"},
}

var actionKeywords = []keywordEntry{
	// Layer actions are listed before the bare verbs they contain
	// ("创建图层" vs "创建").
	{"创建图层", "create_layer"},
	{"切换图层", "change_layer"},
	{"画", "draw"},
	{"绘制", "draw"},
	{"创建", "draw"},
	{"添加", "draw"},
	{"修改", "modify"},
	{"调整", "modify"},
	{"改变", "modify"},
	{"移动", "move"},
	{"旋转", "rotate"},
	{"放大", "scale_up"},
	{"缩小", "scale_down"},
	{"缩放", "scale"},
	{"删除", "erase"},
	{"擦除", "erase"},
	{"移除", "erase"},
	{"保存", "save"},
	{"标注", "dimension"},
	{"填充", "hatch"},
	{"draw", "draw"},
	{"create", "draw"},
	{"add", "draw"},
	{"save", "save"},
}

// domainKeywords tag the engineering discipline a command mentions. The tag
// is informational today: domain-specific shapes classify through the shape
// table like everything else.
var domainKeywords = []keywordEntry{
	{"建筑", "architecture"},
	{"电气", "electrical"},
	{"机械", "mechanical"},
	{"土木", "civil"},
	{"管道", "piping"},
	{"结构", "structural"},
}
