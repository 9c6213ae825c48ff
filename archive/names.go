package archive

// engineFilenames lists every asset packed in the engine table. Order is
// immaterial; only membership matters for the reverse hash lookup.
var engineFilenames = []string{
	"COMPASS.LZ",
	"WATER.LZ",
	"WATEREGA.LZ",
	"CHASE.LZ",
	"BROKE.LZ",
	"BROKEGA.LZ",
	"ACCOCOLR.BIN",
	"ACCO.LZ",
	"TITLCOLR.BIN",
	"TITLE2.LZ",
	"TITLE1.LZ",
	"TITL2COL.BIN",
	"TITLEANI.LZ",
	"TITLELET.LZ",
	"TITLEL2.LZ",
	"TITLECAR.LZ",
	"CREDCOLR.BIN",
	"CREDITC.LZ",
	"CREDITB.LZ",
	"CREDITA.LZ",
	"TOPCOLR.BIN",
	"TOPSCORC.LZ",
	"TOPSCORB.LZ",
	"TOPSCORA.LZ",
	"SELCOLR.BIN",
	"OTWCOL.BIN",
	"THEME.MUS",
	"COPCOLR.BIN",
	"COPB.LZ",
	"COPA.LZ",
	"COPSEQ.LZ",
	"KEYCOLR.BIN",
	"KEYS.LZ",
	"MASTERQ.BIN",
	"DIFFCOLR.BIN",
	"DETAIL1.LZ",
	"DETAIL2.LZ",
	"SELECT.LZ",
	"DIFFLEVA.LZ",
	"DIFFLEVB.LZ",
	"DIFFLEVC.LZ",
	"SSBJ.LZ",
	"SCENETTT.BIN",
	"NEWWAVE.MUS",
	"SCENETTO.BIN",
	"SCENETTP.BIN",
	"SCENETTA.DAT",
	"SCENETT1.DAT",
}

// carFilenameSuffixes are appended to a car's PlayDisk name to form the 15
// per-car asset filenames.
var carFilenameSuffixes = []string{
	"SIC.BIN",
	".SIC",
	".SID",
	"SC.BIN",
	"FL1.LZ",
	"FL2.LZ",
	".BIC",
	".ICN",
	"1.BOT",
	"2.BOT",
	"L.BOT",
	"R.BOT",
	".TOP",
	".ETC",
	"COL.BIN",
}

// sceneFilenameSuffixes are appended to a scene's PlayDisk name to form the
// 29 per-scene asset filenames.
var sceneFilenameSuffixes = []string{
	".ICN",
	".SIC",
	"1.ALZ",
	"1.BLZ",
	"1.COL",
	"1.DAT",
	"2.ALZ",
	"2.BLZ",
	"2.COL",
	"3.ALZ",
	"3.BLZ",
	"3.COL",
	"4.ALZ",
	"4.BLZ",
	"4.COL",
	"5.ALZ",
	"5.BLZ",
	"5.COL",
	"A.DAT",
	"A.MUS",
	"B.DAT",
	"B.MUS",
	"C.DAT",
	"C.MUS",
	"D.DAT",
	"E.DAT",
	"O.BIN",
	"P.BIN",
	"T.BIN",
}

// EngineNameIndex returns the reverse hash lookup for the engine assets.
func EngineNameIndex() NameIndex {
	return BuildNameIndex(engineFilenames)
}

// CarNameIndex returns the reverse hash lookup for one car's assets.
func CarNameIndex(car string) NameIndex {
	names := make([]string, len(carFilenameSuffixes))
	for i, suffix := range carFilenameSuffixes {
		names[i] = car + suffix
	}
	return BuildNameIndex(names)
}

// SceneNameIndex returns the reverse hash lookup for one scene's assets.
func SceneNameIndex(scene string) NameIndex {
	names := make([]string, len(sceneFilenameSuffixes))
	for i, suffix := range sceneFilenameSuffixes {
		names[i] = scene + suffix
	}
	return BuildNameIndex(names)
}
