package interpreter

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Structural-minimum error messages. Everything else is silently defaulted:
// completing a best-guess drawing beats rejecting the command.
const (
	errPolylineNeedsPoints  = "绘制多段线需要至少两个坐标点"
	errHatchNeedsBoundary   = "绘制填充需要至少3个点来定义边界"
	errWallNeedsEndpoints   = "绘制墙体需要提供起点和终点坐标"
	errDimensionNeedsPoints = "添加标注需要起点和终点坐标"
	errLayerNeedsName       = "创建图层需要指定图层名称"
)

const defaultTextLiteral = "示例文本"

func buildDrawLine(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) >= 2 {
		return DrawLine{Start: coords[0], End: coords[1]}
	}
	return DrawLine{
		Start: Coordinate{},
		End:   Coordinate{X: 100, Y: 100},
		Note:  "使用默认坐标，因为命令中未提供足够的坐标信息",
	}
}

func buildDrawCircle(command string) Command {
	return DrawCircle{
		Center: firstCoordinate(command),
		Radius: radiusFrom(command),
	}
}

func buildDrawArc(command string) Command {
	arc := DrawArc{
		Center:     firstCoordinate(command),
		Radius:     radiusFrom(command),
		StartAngle: 0,
		EndAngle:   90,
	}
	if v, ok := extractNamedParameter(command, startAngleRE); ok {
		arc.StartAngle = v
	}
	if v, ok := extractNamedParameter(command, endAngleRE); ok {
		arc.EndAngle = v
	}
	return arc
}

func buildDrawRectangle(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) >= 2 {
		return DrawRectangle{Corner1: coords[0], Corner2: coords[1]}
	}

	width, height := 100.0, 100.0
	if v, ok := extractNamedParameter(command, widthRE); ok {
		width = v
	}
	if v, ok := extractNamedParameter(command, heightRE); ok {
		height = v
	}

	corner1 := Coordinate{}
	if len(coords) == 1 {
		corner1 = coords[0]
	}
	corner2 := Coordinate{X: corner1.X + width, Y: corner1.Y + height, Z: corner1.Z}
	return DrawRectangle{Corner1: corner1, Corner2: corner2}
}

func buildDrawPolyline(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) < 2 {
		return Error{Message: errPolylineNeedsPoints}
	}
	return DrawPolyline{
		Points: coords,
		Closed: strings.Contains(command, "闭合") || strings.Contains(command, "封闭"),
	}
}

func buildDrawText(command string) Command {
	text, ok := extractQuoted(command)
	if !ok {
		text = defaultTextLiteral
	}

	height := 2.5
	if v, ok := extractNamedParameter(command, heightRE); ok {
		height = v
	}
	rotation := 0.0
	if v, ok := extractNamedParameter(command, rotationRE); ok {
		rotation = v
	}

	return DrawText{
		Position: firstCoordinate(command),
		Text:     text,
		Height:   height,
		Rotation: rotation,
	}
}

func buildDrawHatch(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) < 3 {
		return Error{Message: errHatchNeedsBoundary}
	}

	patternName := "SOLID"
	if m := patternQuotedRE.FindStringSubmatch(command); m != nil {
		patternName = strings.ToUpper(m[1])
	} else if m := patternBareRE.FindStringSubmatch(command); m != nil {
		patternName = strings.ToUpper(m[1])
	}

	scale := 1.0
	if v, ok := extractNamedParameter(command, hatchScaleRE); ok {
		scale = v
	}

	return DrawHatch{Points: coords, PatternName: patternName, Scale: scale}
}

func buildDrawWall(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) < 2 {
		return Error{Message: errWallNeedsEndpoints}
	}

	width := 10.0
	if v, ok := extractNamedParameter(command, wallWidthRE); ok {
		width = v
	}
	return DrawWall{Start: coords[0], End: coords[1], Width: width}
}

func buildAddDimension(command string) Command {
	coords := extractCoordinates(command)
	if len(coords) < 2 {
		return Error{Message: errDimensionNeedsPoints}
	}

	dim := AddDimension{Start: coords[0], End: coords[1]}
	if len(coords) >= 3 {
		dim.TextPosition = coords[2]
	} else {
		// Place the label above the midpoint of the measured segment.
		dim.TextPosition = Coordinate{
			X: (coords[0].X + coords[1].X) / 2,
			Y: (coords[0].Y+coords[1].Y)/2 + 10,
			Z: (coords[0].Z + coords[1].Z) / 2,
		}
	}
	return dim
}

func buildCreateLayer(command string) Command {
	name := ""
	if m := layerNameRE.FindStringSubmatch(command); m != nil {
		name = m[1]
	} else if m := layerNameAltRE.FindStringSubmatch(command); m != nil {
		name = m[1]
	}
	if name == "" {
		return Error{Message: errLayerNeedsName}
	}

	// An explicit numeric color code beats name-based resolution.
	color := 0
	if m := colorCodeRE.FindStringSubmatch(command); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 255 {
			color = n
		}
	}
	if color == 0 {
		color = ResolveColor(command)
	}

	return CreateLayer{LayerName: name, Color: color}
}

func buildSave(command string, defaults SaveDefaults) Command {
	if m := savePathRE.FindStringSubmatch(command); m != nil {
		return Save{FilePath: m[1]}
	}
	return Save{FilePath: filepath.Join(defaults.Directory, defaults.Filename)}
}

func firstCoordinate(command string) Coordinate {
	if coords := extractCoordinates(command); len(coords) > 0 {
		return coords[0]
	}
	return Coordinate{}
}

func radiusFrom(command string) float64 {
	if v, ok := extractNamedParameter(command, radiusRE); ok {
		return v
	}
	if numbers := extractNumbers(command); len(numbers) > 0 {
		return numbers[0]
	}
	return 50.0
}
