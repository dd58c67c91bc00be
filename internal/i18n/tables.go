package i18n

var english = map[Key]string{
	KeyAppTitle:              "Sweater Measurements",
	KeyGauge:                 "Gauge",
	KeyBody:                  "Body",
	KeyNeckShoulder:          "Neck & Shoulder",
	KeySleeve:                "Sleeve",
	KeyGarmentType:           "Garment",
	KeySize:                  "Size",
	KeyUnit:                  "Unit",
	KeyFormat:                "Format",
	KeyExport:                "Export",
	KeyExportDone:            "Export complete",
	KeyMissingWarning:        "Unset measurements were exported as 0",
	KeyPresetDiverged:        "Values differ from the selected size",
	KeyPresetMatch:           "Values match standard size",
	KeyValue:                 "Value",
	KeyWidthOfBody:           "Body width",
	KeyLengthOfBody:          "Body length",
	KeyLengthOfRibbedHem:     "Ribbed hem length",
	KeyWidthOfNeck:           "Neck width",
	KeyLengthOfShoulderDrop:  "Shoulder drop",
	KeyLengthOfFrontNeckDrop: "Front neck drop",
	KeyLengthOfBackNeckDrop:  "Back neck drop",
	KeyLengthOfSleeve:        "Sleeve length",
	KeyWidthOfSleeve:         "Sleeve width",
	KeyWidthOfCuff:           "Cuff width",
	KeyLengthOfRibbedCuff:    "Ribbed cuff length",
	KeyStitchesPerGauge:      "Stitches",
	KeyRowsPerGauge:          "Rows",
	KeyUnitCm:                "cm",
	KeyUnitInch:              "inch",
	KeyGaugePer10cm:          "per 10 cm",
	KeyGaugePer4Inch:         "per 4 inch",
	KeyFormatPDF:             "PDF",
	KeyFormatSpreadsheet:     "Spreadsheet",
	KeySizeCustom:            "Custom",
	KeyGarmentCrew:           "Crew neck",
	KeyGarmentVNeck:          "V-neck",
	KeyGarmentHigh:           "High neck",
	KeyGarmentCardigan:       "Cardigan",
	KeyGarmentRaglan:         "Raglan",
	KeyGarmentBoat:           "Boat neck",
	KeyGarmentTurtle:         "Turtleneck",
	KeyGarmentOpen:           "Open front",
}

var japanese = map[Key]string{
	KeyAppTitle:              "セーターの寸法",
	KeyGauge:                 "ゲージ",
	KeyBody:                  "身頃",
	KeyNeckShoulder:          "襟・肩",
	KeySleeve:                "袖",
	KeyGarmentType:           "形状",
	KeySize:                  "サイズ",
	KeyUnit:                  "単位",
	KeyFormat:                "形式",
	KeyExport:                "書き出し",
	KeyExportDone:            "書き出しが完了しました",
	KeyMissingWarning:        "未入力の寸法は0として書き出されました",
	KeyPresetDiverged:        "選択したサイズと寸法が異なります",
	KeyPresetMatch:           "標準サイズと一致します",
	KeyValue:                 "値",
	KeyWidthOfBody:           "身幅",
	KeyLengthOfBody:          "着丈",
	KeyLengthOfRibbedHem:     "裾ゴム編み",
	KeyWidthOfNeck:           "襟ぐり幅",
	KeyLengthOfShoulderDrop:  "肩下がり",
	KeyLengthOfFrontNeckDrop: "前襟ぐり下がり",
	KeyLengthOfBackNeckDrop:  "後ろ襟ぐり下がり",
	KeyLengthOfSleeve:        "袖丈",
	KeyWidthOfSleeve:         "袖幅",
	KeyWidthOfCuff:           "袖口幅",
	KeyLengthOfRibbedCuff:    "袖口ゴム編み",
	KeyStitchesPerGauge:      "目数",
	KeyRowsPerGauge:          "段数",
	KeyUnitCm:                "cm",
	KeyUnitInch:              "インチ",
	KeyGaugePer10cm:          "10cmあたり",
	KeyGaugePer4Inch:         "4インチあたり",
	KeyFormatPDF:             "PDF",
	KeyFormatSpreadsheet:     "スプレッドシート",
	KeySizeCustom:            "カスタム",
	KeyGarmentCrew:           "クルーネック",
	KeyGarmentVNeck:          "Vネック",
	KeyGarmentHigh:           "ハイネック",
	KeyGarmentCardigan:       "カーディガン",
	KeyGarmentRaglan:         "ラグラン",
	KeyGarmentBoat:           "ボートネック",
	KeyGarmentTurtle:         "タートルネック",
	KeyGarmentOpen:           "前開き",
}
