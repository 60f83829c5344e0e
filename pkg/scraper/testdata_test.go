package scraper

const mainPageHTML = `<html><body>
<table id="TableSecondaryClasses">
  <tr><td>Secondary Classes</td></tr>
  <tr><td>Term 1</td></tr>
  <tr><th>Class</th><th>Teacher</th><th>Updated</th><th>Abs</th><th>Exc</th><th>Late</th></tr>
  <tr>
    <td><a href="#" onclick="LoadMarkBook(1001,2002,3,0);">MAT 3791 - Mathematics 30-1 Pre-AP</a></td>
    <td>Smith, J</td><td>10/16/2026</td><td>2</td><td>1</td><td>0</td>
  </tr>
  <tr>
    <td><a href="#" onclick="LoadMarkBook(1001,2003,3,0);">CSE 1110 - Computer Science 2</a></td>
    <td>Lee, K</td><td>10/10/2026</td><td>0</td><td>0</td><td>3</td>
  </tr>
  <tr>
    <td>PED 2015 - Physical Education 20</td>
    <td>Brown, A</td><td>n.a.</td><td>NA</td><td>NA</td><td>NA</td>
  </tr>
</table>
</body></html>`

const markbookHTML = `<div style="font-weight: bold; margin-bottom: 3px;">Term Mark: 87.5</div>
<table>
  <tr><th>Name</th><th>Mark</th><th>Date</th><th>Weight</th><th>Out of</th></tr>
  <tr><td><span style="margin-left: 0px">Term 1</span></td><td>88</td><td></td><td>100</td><td>100</td></tr>
  <tr><td><span style="margin-left: 20px">Quizzes</span></td><td>9</td><td></td><td>30</td><td>10</td></tr>
  <tr><td><span style="margin-left: 40px">Quiz 1</span><img src="c.gif" alt="Comment" title="Great work"></td><td>8.5</td><td>10/16/2026</td><td>1</td><td>10</td></tr>
  <tr><td><span style="margin-left: 40px">Quiz 2</span></td><td>EXC</td><td>10/15/2026</td><td>1</td><td>10</td></tr>
  <tr><td><span style="margin-left: 0px;">Final</span></td><td></td><td></td><td>None</td><td>None</td></tr>
</table>`
