package vlm

// SystemPrompt frames the model as a result-sheet recognition specialist.
const SystemPrompt = "你是一个专业的高山滑雪比赛成绩单识别专家。请准确提取成绩单中的所有信息。"

// ExtractionPrompt asks the vision model to read one result-sheet image and
// emit the event payload as bare JSON.
const ExtractionPrompt = `请仔细阅读这张高山滑雪比赛成绩单图片，提取所有信息并以JSON格式输出。

要求输出格式（只输出JSON，不要任何其他文字）：
{
  "competition": "比赛名称",
  "date": "YYYY-MM-DD或原始格式",
  "venue": "比赛场地",
  "discipline": "大回转/回转/超级大回转/滑降",
  "gender": "男/女/混合",
  "age_group": "年龄组别，如U11/U12/成人/少年甲组/丁组等",
  "round_type": "总成绩/预赛/决赛/正式成绩/非正式总成绩",
  "results": [
    {
      "rank": 1,
      "bib": "号码",
      "name": "姓名",
      "team": "代表队/单位",
      "run1_time": "第一次成绩（保持原始格式）",
      "run2_time": "第二次成绩（保持原始格式）",
      "total_time": "总成绩（保持原始格式）",
      "time_diff": "差距/差值（保持原始格式）",
      "status": "OK/DNF/DNS/DQ"
    }
  ]
}

注意事项：
1. rank为null表示DNF/DNS/DQ选手
2. 如果选手只有一次成绩没有总成绩，run2_time和total_time设为null
3. status字段：正常完赛为"OK"，未完成为"DNF"，未出发为"DNS"，取消资格为"DQ"
4. 保持所有时间的原始格式，不要转换
5. 只输出JSON，不要输出任何其他内容`

// TextParsePrompt structures raw text from a text-native PDF page into the
// same payload. The raw text is appended by BuildTextParsePrompt.
const TextParsePrompt = `请将以下高山滑雪比赛成绩单的原始文本解析为结构化JSON。

要求输出格式（只输出JSON，不要任何其他文字）：
{
  "competition": "比赛名称",
  "date": "YYYY-MM-DD或原始日期格式",
  "venue": "比赛场地",
  "discipline": "大回转/回转/超级大回转/滑降",
  "gender": "男/女/混合",
  "age_group": "年龄组别，如U11/U12/成人/少年甲组/丁组等",
  "round_type": "总成绩/预赛/决赛/正式成绩/非正式总成绩",
  "results": [
    {
      "rank": 1,
      "bib": "号码",
      "name": "姓名",
      "team": "代表队/单位",
      "run1_time": "第一次成绩（保持原始格式）",
      "run2_time": "第二次成绩（保持原始格式）",
      "total_time": "总成绩（保持原始格式）",
      "time_diff": "差距/差值（保持原始格式）",
      "status": "OK/DNF/DNS/DQ"
    }
  ]
}

注意事项：
1. rank为null表示DNF/DNS/DQ选手
2. 如果选手只有一次成绩没有总成绩，run2_time和total_time设为null
3. status字段：正常完赛为"OK"，未完成为"DNF"，未出发为"DNS"，取消资格为"DQ"
4. 保持所有时间的原始格式，不要转换
5. 只输出JSON，不要输出任何其他内容
6. 如果有多页数据，合并到同一个results数组中

以下是原始文本：

`

// BuildTextParsePrompt appends the raw page text to the parse instruction.
func BuildTextParsePrompt(rawText string) string {
	return TextParsePrompt + rawText
}
